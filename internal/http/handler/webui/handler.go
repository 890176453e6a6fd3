package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/pettymatters/internal/core/service"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/topic"
)

type Handler struct {
	mux        *http.ServeMux
	pageConfig component.PageConfig
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := component.WithPageConfig(r.Context(), h.pageConfig)
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func NewHandler(forum *service.Forum, pageConfig component.PageConfig, writeLimiter func(http.Handler) http.Handler) *Handler {
	h := &Handler{
		mux:        http.NewServeMux(),
		pageConfig: pageConfig,
	}

	h.mux.HandleFunc("GET /{$}", h.redirectToTopics)
	h.mux.HandleFunc("/", h.handleNotFound)

	mount(h.mux, "/topics/", topic.NewHandler(forum, writeLimiter))

	return h
}

func (h *Handler) redirectToTopics(w http.ResponseWriter, r *http.Request) {
	redirectURL := component.BaseURL(r.Context(), component.WithPath("topics/"))
	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
