package oidc

import "github.com/bornholm/pettymatters/internal/http/middleware/authn/oidc/component"

type Provider = component.Provider

type Options struct {
	Providers   []component.Provider
	SessionName string
	// Path, relative to the base URL, where users land after logging in
	// when the login did not start from a forum page.
	RedirectPath string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:    make([]Provider, 0),
		SessionName:  "pettymatters_auth",
		RedirectPath: "topics/",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithRedirectPath(path string) OptionFunc {
	return func(opts *Options) {
		opts.RedirectPath = path
	}
}
