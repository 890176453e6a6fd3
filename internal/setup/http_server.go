package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/pettymatters/internal/config"
	"github.com/bornholm/pettymatters/internal/html/utcdate"
	httpServer "github.com/bornholm/pettymatters/internal/http"
	"github.com/bornholm/pettymatters/internal/http/handler/api"
	"github.com/bornholm/pettymatters/internal/http/handler/metrics"
	"github.com/bornholm/pettymatters/internal/http/handler/webui"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/swagger"
	"github.com/bornholm/pettymatters/internal/http/middleware/authn"
	"github.com/bornholm/pettymatters/internal/http/middleware/csp"
	"github.com/bornholm/pettymatters/internal/http/middleware/ratelimit"
	"github.com/bornholm/pettymatters/internal/http/middleware/viewer"
	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"golang.org/x/text/language"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	forum, err := getForumFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create forum from config")
	}

	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	viewerMiddleware, err := getViewerMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure viewer middleware from config")
	}

	authnMiddleware := authn.Middleware(common.HandleError, oidcHandler)

	pageConfig := component.PageConfig{
		IncludeIndicatorStyles: conf.Page.IncludeIndicatorStyles,
	}

	webuiHandler := webui.NewHandler(forum, pageConfig, getWriteLimiterFromConfig(conf))

	apiHandler := cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Accept-Language"},
	}).Handler(api.NewHandler(forum))

	metricsAuth := httpServer.WithBasicAuth(conf.HTTP.Metrics.Username, conf.HTTP.Metrics.Password)

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithBaseURL(conf.HTTP.BaseURL),
		httpServer.WithMiddlewares(
			csp.Middleware(component.HTMXScriptURL),
			authnMiddleware,
			viewerMiddleware,
			utcdate.Middleware(viewer.Resolve),
		),
		httpServer.WithMount("/assets/", common.NewHandler()),
		httpServer.WithMount("/auth/oidc/", oidcHandler),
		httpServer.WithMount("/api/v1/", apiHandler),
		httpServer.WithMount("/docs/", swagger.NewHandler()),
		httpServer.WithMount("/metrics", metricsAuth(metrics.NewHandler())),
		httpServer.WithMount("/", webuiHandler),
	}

	server := httpServer.NewServer(options...)

	return server, nil
}

func getViewerMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	defaultLocale, err := language.Parse(conf.Locale.Default)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse default locale '%s'", conf.Locale.Default)
	}

	defaultLocation, err := localtime.LoadLocation(conf.Locale.Timezone)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	locale, found := localtime.LookupLocale(defaultLocale)
	if !found {
		slog.WarnContext(ctx, "unsupported default locale, using fallback", slog.String("locale", conf.Locale.Default), slog.String("fallback", locale.String()))
	}

	return viewer.Middleware(
		viewer.WithDefaultLocale(locale),
		viewer.WithDefaultLocation(defaultLocation),
		viewer.WithCookie(conf.HTTP.Session.Cookie.Path, conf.HTTP.Session.Cookie.MaxAge, conf.HTTP.Session.Cookie.Secure),
	), nil
}

func getWriteLimiterFromConfig(conf *config.Config) func(http.Handler) http.Handler {
	if !conf.HTTP.RateLimit.Enabled {
		return nil
	}

	return ratelimit.Middleware(
		ratelimit.WithLimit(conf.HTTP.RateLimit.Requests, conf.HTTP.RateLimit.Window),
		ratelimit.WithCacheSize(conf.HTTP.RateLimit.CacheSize),
		ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
		ratelimit.WithOnLimited(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			common.HandleError(w, r, common.NewError(
				"rate limit exceeded",
				common.UserMessage(http.StatusTooManyRequests),
				http.StatusTooManyRequests,
			))
		})),
	)
}
