package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database  Database  `envPrefix:"DATABASE_"`
	Tenant    Tenant    `envPrefix:"TENANT_"`
	Session   Session   `envPrefix:"SESSION_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql
	URL    string `env:"URL" envDefault:"storefront.db"`

	// Seed inserts a demo shop on startup when it does not exist yet.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Tenant controls how the Host header is mapped to a shop and which shops are listed.
type Tenant struct {
	PrimaryDomain        string `env:"PRIMARY_DOMAIN" envDefault:"nexassearch.com"`
	AllowLocalSubdomains bool   `env:"ALLOW_LOCAL_SUBDOMAINS" envDefault:"true"`
	LocalSuffix          string `env:"LOCAL_SUFFIX" envDefault:"localhost"`

	// empty means every status is visible
	VisibleStatuses []string `env:"VISIBLE_STATUSES" envSeparator:","`
}

// Session describes the identity cookie issued by the external auth provider.
type Session struct {
	Secret     string `env:"SECRET"`
	CookieName string `env:"COOKIE_NAME" envDefault:"session"`
	LoginURL   string `env:"LOGIN_URL" envDefault:"/login/"`
}

type RateLimit struct {
	PerSecond float64 `env:"PER_SECOND" envDefault:"5"`
	Burst     int     `env:"BURST" envDefault:"10"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
