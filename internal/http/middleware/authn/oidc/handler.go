package oidc

import (
	"net/http"

	"github.com/gorilla/sessions"
)

type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	redirectPath string
	providers    []Provider
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		redirectPath: opts.RedirectPath,
		providers:    opts.Providers,
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.HandleFunc("GET /providers/{provider}", h.handleProvider)
	h.mux.HandleFunc("GET /providers/{provider}/callback", h.handleProviderCallback)
	h.mux.HandleFunc("GET /providers/{provider}/logout", h.handleProviderLogout)

	return h
}

var _ http.Handler = &Handler{}
