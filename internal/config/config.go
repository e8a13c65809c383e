// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Keys use the ESCOLA_ prefix and "." for nesting:
//
//	ESCOLA_DATABASE.HOSTS=172.18.0.2,172.19.0.2 -> database.hosts -> Config.Database.Hosts
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "ESCOLA_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Hosts is an ordered list of candidate addresses. The first one that
// answers a ping is used for the process lifetime.
type DatabaseConfig struct {
	Hosts           []string      `koanf:"hosts" validate:"required,min=1,dive,required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int           `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int           `koanf:"conn_max_idle_time" validate:"required"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig controls how teacher credentials are hashed and how often
// the login endpoint may be called per client IP.
//
// BcryptCost of zero means bcrypt.DefaultCost. LoginRate is expressed in
// requests per second.
type AuthConfig struct {
	BcryptCost int     `koanf:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
	LoginRate  float64 `koanf:"login_rate" validate:"omitempty,gt=0"`
	LoginBurst int     `koanf:"login_burst" validate:"omitempty,min=1"`
}

// IntegrationConfig stores third-party credentials.
//
// An empty ResendAPIKey disables outgoing email; notification jobs still run
// and log what they would have sent.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

const (
	defaultConnectTimeout = 5 * time.Second
	defaultQueryTimeout   = 10 * time.Second
	defaultEmailFrom      = "Escola <secretaria@bhzconnection.org.br>"
	defaultLoginRate      = 0.2
	defaultLoginBurst     = 5
)

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = "escola"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Database.ConnectTimeout <= 0 {
		c.Database.ConnectTimeout = defaultConnectTimeout
	}
	if c.Database.QueryTimeout <= 0 {
		c.Database.QueryTimeout = defaultQueryTimeout
	}
	if c.Auth.LoginRate <= 0 {
		c.Auth.LoginRate = defaultLoginRate
	}
	if c.Auth.LoginBurst <= 0 {
		c.Auth.LoginBurst = defaultLoginBurst
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = defaultEmailFrom
	}
}

// IsLocal reports whether the process runs in the "local" environment,
// which enables SQL query logging.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
