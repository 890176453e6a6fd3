package cache

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bornholm/pettymatters/internal/core/model"
)

func getCompositeCacheKey(parts ...any) string {
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(fmt.Sprintf("%v", p))
	}
	return sb.String()
}

// getListCacheKey returns a key identifying the normalized list options.
// Filters are sorted so that equivalent options share the same key.
func getListCacheKey(opts model.ListOptions) string {
	opts = opts.Normalize()

	parts := []any{opts.PageNumber, opts.PageSize, opts.OrderBy, opts.Ordering}

	for _, key := range slices.Sorted(maps.Keys(opts.Filters)) {
		parts = append(parts, key+"="+opts.Filters[key])
	}

	return getCompositeCacheKey(parts...)
}
