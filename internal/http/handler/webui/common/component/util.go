package component

import (
	"context"
	"time"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/http/url"
)

var (
	WithPath        = url.WithPath
	WithoutValues   = url.WithoutValues
	WithValuesReset = url.WithValuesReset
	WithValues      = url.WithValues
)

func BaseURL(ctx context.Context, funcs ...url.MutationFunc) string {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return mutated.String()
}

func CurrentURL(ctx context.Context, funcs ...url.MutationFunc) string {
	currentURL := httpCtx.CurrentURL(ctx)
	mutated := url.Mutate(currentURL, funcs...)
	return mutated.String()
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

// UTC formats t as the value of a data-utcdate attribute.
func UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
