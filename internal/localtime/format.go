package localtime

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// InvalidDate is written in place of a timestamp that could not be parsed.
const InvalidDate = "Invalid Date"

// Formatter renders instants in a viewer's locale and timezone. A Formatter
// is immutable and safe for concurrent use.
type Formatter struct {
	locale   language.Tag
	location  *time.Location
	rendering rendering
}

type FormatterOptions struct {
	Locale   language.Tag
	Location *time.Location
}

type FormatterOptionFunc func(opts *FormatterOptions)

func NewFormatterOptions(funcs ...FormatterOptionFunc) *FormatterOptions {
	opts := &FormatterOptions{
		Locale:   DefaultLocale,
		Location: time.UTC,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithLocale(tag language.Tag) FormatterOptionFunc {
	return func(opts *FormatterOptions) {
		opts.Locale = tag
	}
}

func WithLocation(location *time.Location) FormatterOptionFunc {
	return func(opts *FormatterOptions) {
		if location != nil {
			opts.Location = location
		}
	}
}

func NewFormatter(funcs ...FormatterOptionFunc) *Formatter {
	opts := NewFormatterOptions(funcs...)
	locale := MatchLocale(opts.Locale)

	return &Formatter{
		locale:   locale,
		location:  opts.Location,
		rendering: renderingFor(locale),
	}
}

// Locale returns the supported locale the formatter renders with.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

func (f *Formatter) Location() *time.Location {
	return f.location
}

// Format renders t as the locale's default date and time in the formatter's
// timezone.
func (f *Formatter) Format(t time.Time) string {
	local := t.In(f.location)

	if cl := f.rendering.cldr; cl != nil {
		date := cl.translator.FmtDateMedium(local)
		clock := cl.translator.FmtTimeMedium(local)

		if cl.timeFirst {
			return clock + cl.separator + date
		}

		return date + cl.separator + clock
	}

	p := f.rendering.pattern

	clock := local.Format(p.clock)
	if p.am != "" {
		if local.Hour() < 12 {
			clock = strings.Replace(clock, "AM", p.am, 1)
		} else {
			clock = strings.Replace(clock, "PM", p.pm, 1)
		}
	}

	return local.Format(p.date) + p.separator + clock
}

// FormatRaw parses raw as a UTC timestamp and renders it. Unparseable values
// render as InvalidDate and report false.
func (f *Formatter) FormatRaw(raw string) (string, bool) {
	t, err := Parse(raw)
	if err != nil {
		return InvalidDate, false
	}

	return f.Format(t), true
}

// Render produces the display text of a timestamp element.
func (f *Formatter) Render(el Element) Rendering {
	text, valid := f.FormatRaw(el.RawTimestamp)

	return Rendering{
		Element: el,
		Text:    text,
		Valid:   valid,
	}
}

// LoadLocation resolves an IANA timezone name. The empty name is UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load location '%s'", name)
	}

	return location, nil
}
