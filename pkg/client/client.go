package client

import (
	"net/http"
	"net/url"
)

// Client reads topics from a petty matters server and localizes timestamps
// through its API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	header     http.Header
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		header:     opts.Header,
	}
}
