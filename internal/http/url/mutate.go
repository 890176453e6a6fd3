package url

import (
	"net/url"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate returns a copy of u with the mutations applied in order.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u
	if u.User != nil {
		user := *u.User
		copy.User = &user
	}

	for _, fn := range funcs {
		fn(&copy)
	}

	return &copy
}

// WithPath appends the given segments to the URL path.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		joined := u.JoinPath(paths...)
		if len(paths) > 0 && strings.HasSuffix(paths[len(paths)-1], "/") && !strings.HasSuffix(joined.Path, "/") {
			joined.Path += "/"
		}
		u.Path = joined.Path
		u.RawPath = joined.RawPath
	}
}

// WithValues adds the given key/value pairs to the query string.
func WithValues(pairs ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Add(pairs[i], pairs[i+1])
		}
		u.RawQuery = query.Encode()
	}
}

// WithValuesReset replaces the given keys of the query string.
func WithValuesReset(pairs ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Del(pairs[i])
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Add(pairs[i], pairs[i+1])
		}
		u.RawQuery = query.Encode()
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, k := range keys {
			query.Del(k)
		}
		u.RawQuery = query.Encode()
	}
}
