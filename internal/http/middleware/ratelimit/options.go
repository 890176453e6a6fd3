package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	// Trust X-Forwarded-For and X-Real-Ip to identify clients
	TrustHeaders bool
	// Number of requests a client may issue within Window
	Requests  int
	Window    time.Duration
	CacheSize int
	// Called instead of the next handler when a client is over its limit
	OnLimited http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Requests:  10,
		Window:    time.Minute,
		CacheSize: 10000,
		OnLimited: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithLimit(requests int, window time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Requests = requests
		opts.Window = window
	}
}

func WithCacheSize(size int) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
	}
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithOnLimited(handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = handler
	}
}
