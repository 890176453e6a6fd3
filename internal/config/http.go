package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3000"`
	Session   Session   `envPrefix:"SESSION_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	CORS      CORS      `envPrefix:"CORS_"`
	Authn     Authn     `envPrefix:"AUTHN_"`
	Metrics   Metrics   `envPrefix:"METRICS_"`
}

type Session struct {
	Name   string   `env:"NAME,expand" envDefault:"pettymatters"`
	Keys   []string `env:"KEYS,expand"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type RateLimit struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
	// Writes allowed per client and per Window
	Requests int           `env:"REQUESTS,expand" envDefault:"10"`
	Window   time.Duration `env:"WINDOW,expand" envDefault:"1m"`
	// Maximum number of tracked clients
	CacheSize int `env:"CACHE_SIZE,expand" envDefault:"10000"`
	// Identify clients by X-Forwarded-For when behind a reverse proxy
	TrustHeaders bool `env:"TRUST_HEADERS,expand" envDefault:"false"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*"`
}

type Authn struct {
	Providers AuthProviders `envPrefix:"PROVIDERS_"`
}

type AuthProviders struct {
	OIDC   OIDCProvider   `envPrefix:"OIDC_"`
	Github OAuth2Provider `envPrefix:"GITHUB_"`
	Gitea  GiteaProvider  `envPrefix:"GITEA_"`
	Google OAuth2Provider `envPrefix:"GOOGLE_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY,expand"`
	Secret string   `env:"SECRET,expand"`
	Scopes []string `env:"SCOPES,expand" envDefault:"user:email"`
}

type OIDCProvider struct {
	DiscoveryURL string   `env:"DISCOVERY_URL,expand"`
	Key          string   `env:"KEY,expand"`
	Secret       string   `env:"SECRET,expand"`
	Scopes       []string `env:"SCOPES,expand" envDefault:"openid,email,profile"`
	Label        string   `env:"LABEL,expand" envDefault:"OpenID Connect"`
}

type GiteaProvider struct {
	Key        string   `env:"KEY,expand"`
	Secret     string   `env:"SECRET,expand"`
	Scopes     []string `env:"SCOPES,expand"`
	TokenURL   string   `env:"TOKEN_URL,expand"`
	AuthURL    string   `env:"AUTH_URL,expand"`
	ProfileURL string   `env:"PROFILE_URL,expand"`
	Label      string   `env:"LABEL,expand" envDefault:"Gitea"`
}

type Metrics struct {
	Username string `env:"USERNAME,expand"`
	Password string `env:"PASSWORD,expand"`
}
