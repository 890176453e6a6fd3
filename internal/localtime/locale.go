package localtime

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/bg"
	"github.com/go-playground/locales/ca"
	"github.com/go-playground/locales/et"
	"github.com/go-playground/locales/hr"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/lt"
	"github.com/go-playground/locales/lv"
	"github.com/go-playground/locales/ro"
	"github.com/go-playground/locales/sk"
	"github.com/go-playground/locales/sl"
	"github.com/go-playground/locales/vi"
	"golang.org/x/text/language"
)

// pattern is the numeric date + time rendering browsers use for a locale,
// expressed as Go layouts. CLDR short dates use two-digit years for most of
// these locales, so they override the CLDR rendering.
type pattern struct {
	date      string
	clock     string
	separator string
	am, pm    string
}

type localePattern struct {
	tag     language.Tag
	pattern pattern
}

var (
	patternUS = pattern{date: "1/2/2006", clock: "3:04:05 PM", separator: ", ", am: "AM", pm: "PM"}
	patternGB = pattern{date: "02/01/2006", clock: "15:04:05", separator: ", "}
)

// The first entry is the fallback for tags the matcher cannot place.
var localePatterns = []localePattern{
	{language.AmericanEnglish, patternUS},
	{language.BritishEnglish, patternGB},
	{language.MustParse("en-AU"), pattern{date: "02/01/2006", clock: "3:04:05 PM", separator: ", ", am: "am", pm: "pm"}},
	{language.MustParse("en-CA"), pattern{date: "2006-01-02", clock: "3:04:05 PM", separator: ", ", am: "a.m.", pm: "p.m."}},
	{language.MustParse("en-IE"), patternGB},
	{language.MustParse("en-IN"), pattern{date: "2/1/2006", clock: "3:04:05 PM", separator: ", ", am: "am", pm: "pm"}},
	{language.French, pattern{date: "02/01/2006", clock: "15:04:05", separator: " "}},
	{language.CanadianFrench, pattern{date: "2006-01-02", clock: "15 h 04 min 05 s", separator: " "}},
	{language.German, pattern{date: "2.1.2006", clock: "15:04:05", separator: ", "}},
	{language.Spanish, pattern{date: "2/1/2006", clock: "15:04:05", separator: ", "}},
	{language.Italian, pattern{date: "2/1/2006", clock: "15:04:05", separator: ", "}},
	{language.BrazilianPortuguese, pattern{date: "02/01/2006", clock: "15:04:05", separator: ", "}},
	{language.EuropeanPortuguese, pattern{date: "02/01/2006", clock: "15:04:05", separator: ", "}},
	{language.Dutch, pattern{date: "2-1-2006", clock: "15:04:05", separator: ", "}},
	{language.Swedish, pattern{date: "2006-01-02", clock: "15:04:05", separator: " "}},
	{language.Danish, pattern{date: "2.1.2006", clock: "15.04.05", separator: " "}},
	{language.Norwegian, pattern{date: "2.1.2006", clock: "15:04:05", separator: ", "}},
	{language.Finnish, pattern{date: "2.1.2006", clock: "15.04.05", separator: " klo "}},
	{language.Polish, pattern{date: "2.01.2006", clock: "15:04:05", separator: ", "}},
	{language.Czech, pattern{date: "2. 1. 2006", clock: "15:04:05", separator: " "}},
	{language.Russian, pattern{date: "02.01.2006", clock: "15:04:05", separator: ", "}},
	{language.Ukrainian, pattern{date: "02.01.2006", clock: "15:04:05", separator: ", "}},
	{language.Turkish, pattern{date: "02.01.2006", clock: "15:04:05", separator: " "}},
	{language.Japanese, pattern{date: "2006/1/2", clock: "15:04:05", separator: " "}},
	{language.Chinese, pattern{date: "2006/1/2", clock: "15:04:05", separator: " "}},
	{language.Korean, pattern{date: "2006. 1. 2.", clock: "PM 3:04:05", separator: " ", am: "오전", pm: "오후"}},
}

// cldrLocale renders with the CLDR medium date and time of its translator.
type cldrLocale struct {
	tag        language.Tag
	translator locales.Translator
	separator  string
	timeFirst  bool
}

var cldrLocales = []cldrLocale{
	{tag: language.Bulgarian, translator: bg.New(), separator: ", "},
	{tag: language.Catalan, translator: ca.New(), separator: ", "},
	{tag: language.Croatian, translator: hr.New(), separator: " "},
	{tag: language.Estonian, translator: et.New(), separator: " "},
	{tag: language.Hungarian, translator: hu.New(), separator: " "},
	{tag: language.Latvian, translator: lv.New(), separator: " "},
	{tag: language.Lithuanian, translator: lt.New(), separator: " "},
	{tag: language.Romanian, translator: ro.New(), separator: ", "},
	{tag: language.Slovak, translator: sk.New(), separator: " "},
	{tag: language.Slovenian, translator: sl.New(), separator: ", "},
	{tag: language.Vietnamese, translator: vi.New(), separator: " ", timeFirst: true},
}

var (
	supportedTags = func() []language.Tag {
		tags := make([]language.Tag, 0, len(localePatterns)+len(cldrLocales))
		for _, lp := range localePatterns {
			tags = append(tags, lp.tag)
		}
		for _, cl := range cldrLocales {
			tags = append(tags, cl.tag)
		}
		return tags
	}()
	matcher = language.NewMatcher(supportedTags)
)

// DefaultLocale is used when no preference matches a supported locale.
var DefaultLocale = language.AmericanEnglish

// SupportedLocales returns the locales that have a dedicated rendering.
func SupportedLocales() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// LookupLocale returns the supported locale closest to the given preferences,
// in order of preference. It reports false when none of them is close to a
// supported locale.
func LookupLocale(preferred ...language.Tag) (language.Tag, bool) {
	candidates := make([]language.Tag, 0, len(preferred))
	for _, tag := range preferred {
		if tag != language.Und {
			candidates = append(candidates, tag)
		}
	}

	if len(candidates) == 0 {
		return DefaultLocale, false
	}

	_, index, confidence := matcher.Match(candidates...)
	if confidence == language.No {
		return DefaultLocale, false
	}

	return supportedTags[index], true
}

// MatchLocale is LookupLocale falling back to DefaultLocale.
func MatchLocale(preferred ...language.Tag) language.Tag {
	tag, _ := LookupLocale(preferred...)
	return tag
}

// ParseLocale parses a BCP 47 tag or an Accept-Language header value. It
// reports false when the value is malformed or matches no supported locale.
func ParseLocale(raw string) (language.Tag, bool) {
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}

	return LookupLocale(tags...)
}

type rendering struct {
	pattern *pattern
	cldr    *cldrLocale
}

func renderingFor(tag language.Tag) rendering {
	matched := MatchLocale(tag)

	for i := range localePatterns {
		if localePatterns[i].tag == matched {
			return rendering{pattern: &localePatterns[i].pattern}
		}
	}

	for i := range cldrLocales {
		if cldrLocales[i].tag == matched {
			return rendering{cldr: &cldrLocales[i]}
		}
	}

	return rendering{pattern: &patternUS}
}
