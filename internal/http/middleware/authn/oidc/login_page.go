package oidc

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	oidcComponent "github.com/bornholm/pettymatters/internal/http/middleware/authn/oidc/component"
	"github.com/bornholm/pettymatters/internal/http/url"
)

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from := r.URL.Query().Get(returnToParam)

	providers := make([]oidcComponent.Provider, len(h.providers))
	for i, p := range h.providers {
		funcs := []url.MutationFunc{component.WithPath("auth/oidc/providers", p.ID)}
		if isReturnPath(from) {
			funcs = append(funcs, component.WithValues(returnToParam, from))
		}

		p.URL = component.BaseURL(ctx, funcs...)
		providers[i] = p
	}

	vmodel := oidcComponent.LoginPageVModel{
		Providers: providers,
	}

	loginPage := oidcComponent.LoginPage(vmodel)

	templ.Handler(loginPage).ServeHTTP(w, r)
}
