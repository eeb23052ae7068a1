package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string        `yaml:"port"`
	JWTSecret string        `yaml:"secret_key"`
	JWTExpiry time.Duration `yaml:"jwt_access_expiry"`

	DBDriver    string `yaml:"db_driver"`
	DatabaseURL string `yaml:"database_url"`
	DBPath      string `yaml:"db_path"`

	BcryptCost int `yaml:"bcrypt_cost"`

	RevocationStore         string        `yaml:"revocation_store"`
	RevocationSweepInterval time.Duration `yaml:"revocation_sweep_interval"`

	RateLimitMax    int           `yaml:"rate_limit_max"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
	RateLimitScope  string        `yaml:"rate_limit_scope"`

	CORSOrigin string `yaml:"cors_origin"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	RevocationMemory   = "memory"
	RevocationDatabase = "database"

	RateLimitScopeAuth   = "auth"
	RateLimitScopeGlobal = "global"
)

// Defaults returns the configuration used when nothing else is provided.
func Defaults() *Config {
	return &Config{
		Port:                    "3000",
		JWTExpiry:               time.Hour,
		DBDriver:                DriverPostgres,
		DBPath:                  "notekeeper.db",
		BcryptCost:              10,
		RevocationStore:         RevocationMemory,
		RevocationSweepInterval: 10 * time.Minute,
		RateLimitMax:            5,
		RateLimitWindow:         10 * time.Minute,
		RateLimitScope:          RateLimitScopeAuth,
		CORSOrigin:              "*",
		LogLevel:                "info",
		LogFormat:               "json",
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then .env, then the process environment. Later sources win.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.JWTSecret = getEnv("SECRET_KEY", getEnv("JWT_SECRET", cfg.JWTSecret))
	cfg.JWTExpiry = getDuration("JWT_ACCESS_EXPIRY", cfg.JWTExpiry)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.BcryptCost = getInt("BCRYPT_COST", cfg.BcryptCost)
	cfg.RevocationStore = getEnv("REVOCATION_STORE", cfg.RevocationStore)
	cfg.RevocationSweepInterval = getDuration("REVOCATION_SWEEP_INTERVAL", cfg.RevocationSweepInterval)
	cfg.RateLimitMax = getInt("RATE_LIMIT_MAX", cfg.RateLimitMax)
	cfg.RateLimitWindow = getDuration("RATE_LIMIT_WINDOW", cfg.RateLimitWindow)
	cfg.RateLimitScope = getEnv("RATE_LIMIT_SCOPE", cfg.RateLimitScope)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_EXPIRY must be positive"))
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}
	switch c.RevocationStore {
	case RevocationMemory, RevocationDatabase:
	default:
		errs = append(errs, fmt.Errorf("unknown REVOCATION_STORE %q", c.RevocationStore))
	}
	switch c.RateLimitScope {
	case RateLimitScopeAuth, RateLimitScopeGlobal:
	default:
		errs = append(errs, fmt.Errorf("unknown RATE_LIMIT_SCOPE %q", c.RateLimitScope))
	}
	return errors.Join(errs...)
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
