package localtime

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidDate = errors.New("invalid date")

// Layouts accepted by Parse, tried in order. Values without an explicit
// offset are read as UTC. Fractional seconds are accepted after any seconds
// field.
var layouts = []string{
	// ISO 8601 / RFC 3339 and the variants browsers tolerate
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",

	// Server side renderings ("2024-01-15 08:30:00 UTC", time.Time.String())
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05 -0700",

	// RFC 2822 and friends
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,

	// Date.prototype.toString()
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",

	// Long month forms
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// Obsolete RFC 2822 zone names. time.Parse gives unknown abbreviations a zero
// offset.
var namedZones = map[string]int{
	"UT":  0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// Parse reads a UTC timestamp string and returns the instant it denotes,
// expressed in UTC.
func Parse(raw string) (time.Time, error) {
	value := normalize(raw)
	if value == "" {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "empty value")
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err != nil {
			continue
		}

		return fixNamedZone(t).UTC(), nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "could not parse '%s'", raw)
}

func normalize(raw string) string {
	value := strings.TrimSpace(raw)

	// Drop the "(Central European Standard Time)" suffix of Date.toString()
	if before, _, found := strings.Cut(value, " ("); found && strings.HasSuffix(value, ")") {
		value = strings.TrimSpace(before)
	}

	return strings.Join(strings.Fields(value), " ")
}

func fixNamedZone(t time.Time) time.Time {
	name, offset := t.Zone()
	if offset != 0 {
		return t
	}

	expected, known := namedZones[strings.ToUpper(name)]
	if !known || expected == 0 {
		return t
	}

	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, expected),
	)
}
