package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"sqlpractice/internal/utils"
)

const (
	DefaultPort         = 8501
	DefaultDBFile       = "learn_sql.db"
	DefaultQueryTimeout = 5 * time.Second
	DefaultMaxRows      = 1000
)

type Config struct {
	Host               string
	Port               int
	DBFile             string
	QueryTimeout       time.Duration
	MaxRows            int
	CORSAllowedOrigins []string
	GinMode            string
	LogLevel           string
}

// Addr is the listen address for the http server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Overrides are command-line values that take precedence over the
// environment. Zero values leave the environment setting in place.
type Overrides struct {
	Host   string
	Port   int
	DBFile string
}

// Load reads the configuration from the environment and applies o on top.
// A .env file in the working directory is loaded first when present. An
// environment variable that is overridden is not parsed.
func Load(o Overrides) (*Config, error) {
	cfg := &Config{
		Host:               os.Getenv("HOST"),
		Port:               DefaultPort,
		DBFile:             DefaultDBFile,
		QueryTimeout:       DefaultQueryTimeout,
		MaxRows:            DefaultMaxRows,
		CORSAllowedOrigins: []string{"*"},
		GinMode:            os.Getenv("GIN_MODE"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("PORT"); v != "" && o.Port == 0 {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be a valid integer: %w", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("DB_FILE"); v != "" {
		cfg.DBFile = v
	}

	if v := os.Getenv("QUERY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("QUERY_TIMEOUT must be a valid duration: %w", err)
		}
		cfg.QueryTimeout = d
	}

	if v := os.Getenv("MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAX_ROWS must be a valid integer: %w", err)
		}
		cfg.MaxRows = n
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = utils.SplitAndTrim(v, ",")
	}

	if o.Host != "" {
		cfg.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Port = o.Port
	}
	if o.DBFile != "" {
		cfg.DBFile = o.DBFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.DBFile == "" {
		return fmt.Errorf("database file path is required")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive")
	}
	if c.MaxRows <= 0 {
		return fmt.Errorf("max rows must be positive")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}
	return nil
}
