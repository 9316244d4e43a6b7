package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string        `env:"PORT,default=8080"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT,default=15s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT,default=15s"`
	IdleTimeout    time.Duration `env:"SERVER_IDLE_TIMEOUT,default=60s"`
	StaticDir      string        `env:"STATIC_DIR,default=static"`
	CORSOrigins    []string      `env:"CORS_ORIGINS,default=*"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS,default=20"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST,default=40"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver         string `env:"DB_DRIVER,default=postgres"`
	Host           string `env:"DB_HOST,default=localhost"`
	Port           int    `env:"DB_PORT,default=5432"`
	User           string `env:"DB_USER,default=postgres"`
	Password       string `env:"DB_PASSWORD,default=postgres"`
	DBName         string `env:"DB_NAME,default=invoice_hub"`
	SSLMode        string `env:"DB_SSLMODE,default=disable"`
	Path           string `env:"DB_PATH,default=invoice_hub.db"`
	Debug          bool   `env:"DB_DEBUG,default=false"`
	ConnectRetries int    `env:"DB_CONNECT_RETRIES,default=5"`
	MaxOpenConns   int    `env:"DB_MAX_OPEN_CONNS,default=20"`
}

// DSN returns the key=value connection string understood by the postgres
// driver, or the file path for sqlite.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL returns the postgres:// form expected by golang-migrate.
func (d DatabaseConfig) URL() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type AppConfig struct {
	Env        string `env:"APP_ENV,default=development"`
	Migrations bool   `env:"MIGRATIONS,default=false"`
	Seed       bool   `env:"DB_SEED,default=false"`
	LogLevel   string `env:"LOG_LEVEL,default=info"`
	LogFormat  string `env:"LOG_FORMAT,default=text"`
}

// Dev reports whether the app runs in a development environment.
func (a AppConfig) Dev() bool { return a.Env == "development" || a.Env == "dev" }

// Load decodes the configuration from the environment. Callers load .env
// beforehand with godotenv when they want one.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Database.ConnectRetries < 1 {
		cfg.Database.ConnectRetries = 1
	}
	return cfg, nil
}
