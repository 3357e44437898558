// Package config loads creditflow settings from a YAML file and CREDITFLOW_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/flow"
)

// Store drivers.
const (
	DriverYAML     = "yaml"
	DriverPostgres = "postgres"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration.
type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Database DatabaseConfig `mapstructure:"database"`
	Routing  RoutingConfig  `mapstructure:"routing"`
	Log      LogConfig      `mapstructure:"log"`
}

// StoreConfig selects where credit lines are read from.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // yaml, postgres
	Path   string `mapstructure:"path"`   // snapshot file for the yaml driver
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres driver.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection URL. User, password and database
// name are escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}

	return u.String()
}

// RoutingConfig tunes route computation.
type RoutingConfig struct {
	Algorithm string `mapstructure:"algorithm"` // dinic, edmonds-karp
	MaxLines  int    `mapstructure:"max_lines"` // 0 = no bound
}

// MaxFlowAlgorithm parses Algorithm.
func (r RoutingConfig) MaxFlowAlgorithm() (flow.Algorithm, error) {
	return flow.ParseAlgorithm(r.Algorithm)
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // debug, info, warn, error
	Development bool   `mapstructure:"development"` // console encoder, stack traces on warn
}

// NewLogger builds a zap logger at the configured level.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}

// Load reads configuration from file and environment variables.
// Environment variables override file values: CREDITFLOW_STORE_PATH,
// CREDITFLOW_ROUTING_ALGORITHM, and so on.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("store.driver", DriverYAML)
	v.SetDefault("store.path", "network.yaml")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "creditflow")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("routing.algorithm", flow.Dinic.String())
	v.SetDefault("routing.max_lines", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("creditflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CREDITFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// Validate rejects unknown drivers, algorithms and log levels.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverYAML:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path is required for the yaml driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalidConfig, c.Store.Driver)
	}
	if _, err := c.Routing.MaxFlowAlgorithm(); err != nil {
		return fmt.Errorf("%w: routing.algorithm: %v", ErrInvalidConfig, err)
	}
	if c.Routing.MaxLines < 0 {
		return fmt.Errorf("%w: routing.max_lines must not be negative", ErrInvalidConfig)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}
