package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
	// Fall back to in-memory stores when the database cannot be opened
	EphemeralAllowed bool `env:"EPHEMERAL_ALLOWED,expand" envDefault:"false"`
}

type Database struct {
	// postgres:// URLs select PostgreSQL, anything else is a SQLite file
	DSN string `env:"DSN,expand" envDefault:"data.sqlite"`
}

type Cache struct {
	Size int           `env:"SIZE,expand" envDefault:"10000"`
	TTL  time.Duration `env:"TTL,expand" envDefault:"30s"`
}

type Queue struct {
	Capacity int `env:"CAPACITY,expand" envDefault:"100"`
}
