package topic

import (
	"net/http"

	"github.com/bornholm/pettymatters/internal/core/service"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
)

type Handler struct {
	mux   *http.ServeMux
	forum *service.Forum
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler serves the topic pages. Routes creating content go through
// writeLimiter.
func NewHandler(forum *service.Forum, writeLimiter func(http.Handler) http.Handler) *Handler {
	h := &Handler{
		mux:   http.NewServeMux(),
		forum: forum,
	}

	if writeLimiter == nil {
		writeLimiter = func(next http.Handler) http.Handler { return next }
	}

	h.mux.HandleFunc("GET /{$}", h.getListPage)
	h.mux.HandleFunc("GET /new", h.getCreatePage)
	h.mux.Handle("POST /new", writeLimiter(http.HandlerFunc(h.handleCreate)))
	h.mux.HandleFunc("GET /{topicID}", h.getShowPage)
	h.mux.Handle("POST /{topicID}/comments", writeLimiter(http.HandlerFunc(h.handleReply)))
	h.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
	})

	return h
}

var _ http.Handler = &Handler{}
