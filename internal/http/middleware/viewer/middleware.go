package viewer

import (
	"log/slog"
	"net/http"
	"time"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/bornholm/go-x/slogx"
	"golang.org/x/text/language"
)

// Middleware attaches to each request the formatter matching the viewer's
// locale and timezone. Choices made through the query string are remembered
// in cookies.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := resolveLocale(w, r, opts)
			location := resolveLocation(w, r, opts)

			formatter := localtime.NewFormatter(
				localtime.WithLocale(locale),
				localtime.WithLocation(location),
			)

			ctx := httpCtx.SetFormatter(r.Context(), formatter)
			ctx = slogx.WithAttrs(ctx,
				slog.String("locale", formatter.Locale().String()),
				slog.String("timezone", location.String()),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Resolve returns the formatter attached to the request by Middleware.
func Resolve(r *http.Request) localtime.Renderer {
	return httpCtx.Formatter(r.Context())
}

func resolveLocale(w http.ResponseWriter, r *http.Request, opts *Options) language.Tag {
	if raw := r.URL.Query().Get(LocaleParam); raw != "" {
		if tag, ok := localtime.ParseLocale(raw); ok {
			setCookie(w, opts, LocaleCookie, tag.String())
			return tag
		}
	}

	if cookie, err := r.Cookie(LocaleCookie); err == nil {
		if tag, ok := localtime.ParseLocale(cookie.Value); ok {
			return tag
		}
	}

	if raw := r.Header.Get("Accept-Language"); raw != "" {
		tags, _, err := language.ParseAcceptLanguage(raw)
		if err == nil {
			if tag, found := localtime.LookupLocale(tags...); found {
				return tag
			}
		}
	}

	return opts.DefaultLocale
}

func resolveLocation(w http.ResponseWriter, r *http.Request, opts *Options) *time.Location {
	if raw := r.URL.Query().Get(TimezoneParam); raw != "" {
		location, err := localtime.LoadLocation(raw)
		if err == nil {
			setCookie(w, opts, TimezoneCookie, location.String())
			return location
		}

		slog.DebugContext(r.Context(), "ignoring unknown timezone", slog.String("timezone", raw))
	}

	if cookie, err := r.Cookie(TimezoneCookie); err == nil {
		if location, err := localtime.LoadLocation(cookie.Value); err == nil {
			return location
		}
	}

	return opts.DefaultLocation
}

func setCookie(w http.ResponseWriter, opts *Options, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.CookiePath,
		MaxAge:   int(opts.CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
