package config

type Locale struct {
	// Used when the viewer expresses no supported language preference
	Default string `env:"DEFAULT,expand" envDefault:"en-US"`
	// IANA timezone used when the viewer did not pick one
	Timezone string `env:"TIMEZONE,expand" envDefault:"UTC"`
}

type Page struct {
	// htmx injects an inline <style> element for its request indicators
	// unless this is disabled, which a strict style-src forbids.
	IncludeIndicatorStyles bool `env:"INCLUDE_INDICATOR_STYLES,expand" envDefault:"false"`
}
