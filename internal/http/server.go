package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Handler returns the server's routes wrapped in its middlewares.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	if baseURL.Path == "" {
		baseURL.Path = "/"
	}

	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		mount(mux, prefix, handler)
	}

	var handler http.Handler = mux

	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		handler = s.opts.Middlewares[i](handler)
	}

	handler = s.withURLs(baseURL, handler)

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    true,
	})(handler)

	return handler, nil
}

// Run serves requests until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	serveErr := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", s.opts.Address))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()

		slog.InfoContext(ctx, "shutting down http server")

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "could not shutdown http server")
		}

		return nil

	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return errors.WithStack(err)
	}
}

func (s *Server) withURLs(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		currentURL := *r.URL
		if baseURL.Host != "" {
			currentURL.Scheme = baseURL.Scheme
			currentURL.Host = baseURL.Host
		}

		ctx = httpCtx.SetBaseURL(ctx, baseURL)
		ctx = httpCtx.SetCurrentURL(ctx, &currentURL)
		ctx = slogx.WithAttrs(ctx, slog.String("path", r.URL.Path))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
