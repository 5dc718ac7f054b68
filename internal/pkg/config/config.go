package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// EnvPrefix marks environment variables read into the config.
// APP_AUTH__JWT_SECRET maps to auth.jwt_secret.
const EnvPrefix = "APP_"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Line      LineConfig      `koanf:"line"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	App       AppConfig       `koanf:"app"`
	Log       LogConfig       `koanf:"log"`
	I18n      I18nConfig      `koanf:"i18n"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AllowOrigins    []string      `koanf:"allow_origins"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // sqlite | postgres
	DSN          string `koanf:"dsn"`
	Seed         bool   `koanf:"seed"` // Insert demo users and universities into an empty database
	LogSQL       bool   `koanf:"log_sql"`
	MaxOpenConns int    `koanf:"max_open_conns"`
}

type AuthConfig struct {
	JWTSecret    string        `koanf:"jwt_secret"`
	TokenTTL     time.Duration `koanf:"token_ttl"`
	RememberTTL  time.Duration `koanf:"remember_ttl"` // Used when the client asks to be remembered
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
	BcryptCost   int           `koanf:"bcrypt_cost"`
}

type LineConfig struct {
	ChannelSecret      string `koanf:"channel_secret"`
	ChannelAccessToken string `koanf:"channel_access_token"`
}

// Enabled reports whether both LINE credentials are present.
func (c LineConfig) Enabled() bool {
	return c.ChannelSecret != "" && c.ChannelAccessToken != ""
}

type SchedulerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	DeadlineScanSpec string        `koanf:"deadline_scan_spec"`
	LeadTime         time.Duration `koanf:"lead_time"`
}

type AppConfig struct {
	Timezone string `koanf:"timezone"`
}

// Location resolves the configured timezone. Call Validate first.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text | json
}

type I18nConfig struct {
	DefaultLanguage string `koanf:"default_language"`
}

// legacyEnv maps the plain variable names used by earlier deployments.
var legacyEnv = map[string]string{
	"PORT":                 "server.port",
	"DB_URL":               "database.dsn",
	"JWT_SECRET":           "auth.jwt_secret",
	"CHANNEL_SECRET":       "line.channel_secret",
	"CHANNEL_ACCESS_TOKEN": "line.channel_access_token",
}

// Load builds the config from defaults, an optional YAML file and the environment,
// in that order of precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
		}
	}

	for name, key := range legacyEnv {
		if v := os.Getenv(name); v != "" {
			if err := k.Set(key, v); err != nil {
				return nil, fmt.Errorf("failed to apply %s: %w", name, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver: %s (supported: %s, %s)",
			c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required (set JWT_SECRET or APP_AUTH__JWT_SECRET)")
	}
	if c.Auth.TokenTTL <= 0 || c.Auth.RememberTTL <= 0 {
		return fmt.Errorf("auth token lifetimes must be positive")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31")
	}

	if c.Scheduler.Enabled && c.Scheduler.LeadTime <= 0 {
		return fmt.Errorf("scheduler.lead_time must be positive")
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}

	switch c.I18n.DefaultLanguage {
	case "zh", "en":
	default:
		return fmt.Errorf("unsupported i18n.default_language: %s", c.I18n.DefaultLanguage)
	}
	return nil
}
