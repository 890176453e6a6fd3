package common

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

// GetFormatter returns the formatter matching the locale and timezone flags.
// Without a locale flag, the POSIX LANG variable is used, and without a
// timezone, the system one.
func GetFormatter(ctx *cli.Context) (*localtime.Formatter, error) {
	locale, err := resolveLocale(ctx.String(paramLocale), os.Getenv("LANG"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	location, err := resolveLocation(ctx.String(paramTimezone))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return localtime.NewFormatter(
		localtime.WithLocale(locale),
		localtime.WithLocation(location),
	), nil
}

func resolveLocale(flag string, lang string) (language.Tag, error) {
	if flag != "" {
		tag, ok := localtime.ParseLocale(flag)
		if !ok {
			return language.Und, errors.Errorf("unsupported locale '%s'", flag)
		}

		return tag, nil
	}

	if raw := posixLocale(lang); raw != "" {
		if tag, ok := localtime.ParseLocale(raw); ok {
			return tag, nil
		}

		slog.Debug("unsupported system locale, using default", slog.String("lang", lang))
	}

	return localtime.DefaultLocale, nil
}

// resolveLocation loads an IANA timezone name. An empty name, or a TZ value
// pointing to a zone file, is the system timezone.
func resolveLocation(raw string) (*time.Location, error) {
	name := posixTimezone(raw)
	if name == "" {
		return time.Local, nil
	}

	location, err := localtime.LoadLocation(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return location, nil
}

// posixTimezone strips the leading colon POSIX allows in TZ. Zone file
// paths, which only the system timezone can honor, yield an empty name.
func posixTimezone(raw string) string {
	name := strings.TrimPrefix(strings.TrimSpace(raw), ":")
	if strings.HasPrefix(name, "/") {
		return ""
	}

	return name
}

// posixLocale converts values such as fr_FR.UTF-8 to BCP 47 tags.
func posixLocale(raw string) string {
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	raw, _, _ = strings.Cut(raw, ".")
	raw, _, _ = strings.Cut(raw, "@")
	raw = strings.ReplaceAll(raw, "_", "-")

	if _, err := language.Parse(raw); err != nil {
		return ""
	}

	return raw
}
