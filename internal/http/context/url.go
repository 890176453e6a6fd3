package context

import (
	"context"
	"net/url"
)

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)

func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	copy := *baseURL

	return &copy
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	copy := *currentURL

	return &copy
}

func SetCurrentURL(ctx context.Context, currentURL *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, currentURL)
}
