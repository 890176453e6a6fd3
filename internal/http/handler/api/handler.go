package api

import (
	"net/http"

	"github.com/bornholm/pettymatters/internal/core/service"
)

type Handler struct {
	forum *service.Forum
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(forum *service.Forum) *Handler {
	h := &Handler{
		forum: forum,
		mux:   &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /topics", h.handleListTopics)
	h.mux.HandleFunc("GET /topics/{topicID}", h.handleGetTopic)
	h.mux.HandleFunc("GET /topics/{topicID}/comments", h.handleListComments)
	h.mux.HandleFunc("POST /localize", h.handleLocalize)

	return h
}

var _ http.Handler = &Handler{}
