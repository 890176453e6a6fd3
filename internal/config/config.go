package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Cache   Cache   `envPrefix:"CACHE_"`
	Queue   Queue   `envPrefix:"QUEUE_"`
	Locale  Locale  `envPrefix:"LOCALE_"`
	Page    Page    `envPrefix:"PAGE_"`
}

const Prefix = "PETTY_MATTERS_"

func Parse() (*Config, error) {
	return ParseWithOptions(env.Options{})
}

// ParseWithOptions parses the configuration from the environment. The
// prefix is always applied.
func ParseWithOptions(opts env.Options) (*Config, error) {
	opts.Prefix = Prefix

	conf, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}

type Logger struct {
	Level int `env:"LEVEL,expand" envDefault:"0"`
}
