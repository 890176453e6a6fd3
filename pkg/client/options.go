package client

import (
	"net/http"
	"net/url"
	"time"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	// Sent with every request
	Header http.Header
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

// WithLocale asks the server to render timestamps for the given BCP 47
// language tag.
func WithLocale(locale string) OptionFunc {
	return func(opts *Options) {
		opts.Header.Set("Accept-Language", locale)
	}
}

// WithTimezone asks the server to render timestamps in the given IANA
// timezone.
func WithTimezone(timezone string) OptionFunc {
	return func(opts *Options) {
		opts.Header.Add("Cookie", (&http.Cookie{Name: "pm_tz", Value: timezone}).String())
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3000",
		},
		HTTPClient: &http.Client{
			Timeout: time.Minute,
			Transport: &RetryTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  5,
				DefaultWait: time.Second,
			},
		},
		Header: http.Header{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
