package context

import (
	"context"

	"github.com/bornholm/pettymatters/internal/localtime"
)

const keyFormatter contextKey = "formatter"

// Formatter returns the timestamp formatter matching the viewer's locale and
// timezone.
func Formatter(ctx context.Context) *localtime.Formatter {
	formatter, ok := ctx.Value(keyFormatter).(*localtime.Formatter)
	if !ok {
		return localtime.NewFormatter()
	}

	return formatter
}

func SetFormatter(ctx context.Context, formatter *localtime.Formatter) context.Context {
	return context.WithValue(ctx, keyFormatter, formatter)
}
