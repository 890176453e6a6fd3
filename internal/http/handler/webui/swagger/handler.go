package swagger

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yml
var openAPISpec []byte

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /openapi.json", h.serveSpec)
	h.mux.HandleFunc("GET /openapi.yml", h.serveRawSpec)

	return h
}

func (h *Handler) serveSpec(w http.ResponseWriter, r *http.Request) {
	var spec any
	if err := yaml.Unmarshal(openAPISpec, &spec); err != nil {
		slog.ErrorContext(r.Context(), "could not parse openapi spec", slogx.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Add("Content-Type", "application/json")

	if err := encoder.Encode(spec); err != nil {
		slog.ErrorContext(r.Context(), "could not encode openapi spec", slogx.Error(errors.WithStack(err)))
	}
}

func (h *Handler) serveRawSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/yaml")

	if _, err := w.Write(openAPISpec); err != nil {
		slog.ErrorContext(r.Context(), "could not write openapi spec", slogx.Error(errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
