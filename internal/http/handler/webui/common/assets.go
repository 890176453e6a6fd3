package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assetsFS embed.FS

type Handler struct {
	files http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	h.files.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	root, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	return &Handler{
		files: http.FileServerFS(root),
	}
}

var _ http.Handler = &Handler{}
