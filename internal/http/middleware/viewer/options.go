package viewer

import (
	"time"

	"github.com/bornholm/pettymatters/internal/localtime"
	"golang.org/x/text/language"
)

const (
	LocaleParam    = "lang"
	TimezoneParam  = "tz"
	LocaleCookie   = "pm_lang"
	TimezoneCookie = "pm_tz"
)

type Options struct {
	DefaultLocale   language.Tag
	DefaultLocation *time.Location
	CookieMaxAge    time.Duration
	CookiePath      string
	SecureCookies   bool
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		DefaultLocale:   localtime.DefaultLocale,
		DefaultLocation: time.UTC,
		CookieMaxAge:    365 * 24 * time.Hour,
		CookiePath:      "/",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithDefaultLocale(tag language.Tag) OptionFunc {
	return func(opts *Options) {
		opts.DefaultLocale = tag
	}
}

func WithDefaultLocation(location *time.Location) OptionFunc {
	return func(opts *Options) {
		if location != nil {
			opts.DefaultLocation = location
		}
	}
}

func WithCookie(path string, maxAge time.Duration, secure bool) OptionFunc {
	return func(opts *Options) {
		opts.CookiePath = path
		opts.CookieMaxAge = maxAge
		opts.SecureCookies = secure
	}
}
