package setup

import (
	"context"
	"strings"

	"github.com/bornholm/pettymatters/internal/config"
	"github.com/bornholm/pettymatters/internal/http/middleware/authn/oidc"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

type identityProvider struct {
	Name       string
	Label      string
	Configured func(conf *config.Config) bool
	New        func(conf *config.Config, callbackURL string) (goth.Provider, error)
}

var identityProviders = []identityProvider{
	{
		Name:  "google",
		Label: "Google",
		Configured: func(conf *config.Config) bool {
			return conf.HTTP.Authn.Providers.Google.Key != "" && conf.HTTP.Authn.Providers.Google.Secret != ""
		},
		New: func(conf *config.Config, callbackURL string) (goth.Provider, error) {
			p := conf.HTTP.Authn.Providers.Google
			return google.New(p.Key, p.Secret, callbackURL, p.Scopes...), nil
		},
	},
	{
		Name:  "github",
		Label: "GitHub",
		Configured: func(conf *config.Config) bool {
			return conf.HTTP.Authn.Providers.Github.Key != "" && conf.HTTP.Authn.Providers.Github.Secret != ""
		},
		New: func(conf *config.Config, callbackURL string) (goth.Provider, error) {
			p := conf.HTTP.Authn.Providers.Github
			return github.New(p.Key, p.Secret, callbackURL, p.Scopes...), nil
		},
	},
	{
		Name: "gitea",
		Configured: func(conf *config.Config) bool {
			return conf.HTTP.Authn.Providers.Gitea.Key != "" && conf.HTTP.Authn.Providers.Gitea.Secret != ""
		},
		New: func(conf *config.Config, callbackURL string) (goth.Provider, error) {
			p := conf.HTTP.Authn.Providers.Gitea
			return gitea.NewCustomisedURL(p.Key, p.Secret, callbackURL, p.AuthURL, p.TokenURL, p.ProfileURL, p.Scopes...), nil
		},
	},
	{
		Name: "openid-connect",
		Configured: func(conf *config.Config) bool {
			return conf.HTTP.Authn.Providers.OIDC.Key != "" && conf.HTTP.Authn.Providers.OIDC.Secret != ""
		},
		New: func(conf *config.Config, callbackURL string) (goth.Provider, error) {
			p := conf.HTTP.Authn.Providers.OIDC

			provider, err := openidConnect.New(p.Key, p.Secret, callbackURL, p.DiscoveryURL, p.Scopes...)
			if err != nil {
				return nil, errors.Wrap(err, "could not configure oidc provider")
			}

			return provider, nil
		},
	},
}

// Labels of self-hosted providers are configurable
func providerLabel(conf *config.Config, p identityProvider) string {
	switch p.Name {
	case "gitea":
		return conf.HTTP.Authn.Providers.Gitea.Label
	case "openid-connect":
		return conf.HTTP.Authn.Providers.OIDC.Label
	default:
		return p.Label
	}
}

func getIdentityProvidersFromConfig(conf *config.Config) ([]goth.Provider, []oidc.Provider, error) {
	gothProviders := make([]goth.Provider, 0)
	providers := make([]oidc.Provider, 0)

	for _, p := range identityProviders {
		if !p.Configured(conf) {
			continue
		}

		gothProvider, err := p.New(conf, callbackURL(conf, p.Name))
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}

		gothProviders = append(gothProviders, gothProvider)

		providers = append(providers, oidc.Provider{
			ID:    gothProvider.Name(),
			Label: providerLabel(conf, p),
			Class: "provider-" + p.Name,
		})
	}

	return gothProviders, providers, nil
}

var getOIDCAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oidc.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gothProviders, providers, err := getIdentityProvidersFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	handler := oidc.NewHandler(
		sessionStore,
		oidc.WithProviders(providers...),
		oidc.WithSessionName(authSessionName(conf)),
	)

	return handler, nil
})

// Cookie holding the logged in forum user.
func authSessionName(conf *config.Config) string {
	return conf.HTTP.Session.Name + "_auth"
}

func callbackURL(conf *config.Config, provider string) string {
	return strings.TrimSuffix(conf.HTTP.BaseURL, "/") + "/auth/oidc/providers/" + provider + "/callback"
}
