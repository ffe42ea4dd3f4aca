package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

type Config struct {
	Env     string        `mapstructure:"env"`
	Server  ServerConfig  `mapstructure:"http_server"`
	Storage StorageConfig `mapstructure:"storage"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Export  ExportConfig  `mapstructure:"export"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type StorageConfig struct {
	Driver          string        `mapstructure:"driver" validate:"required,oneof=memory sqlite postgres redis"`
	Source          string        `mapstructure:"source"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Redis           RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type SessionConfig struct {
	AdminEmail           string `mapstructure:"admin_email" validate:"required"`
	AdminPasswordHash    string `mapstructure:"admin_password_hash" validate:"required"`
	EmployeePasswordHash string `mapstructure:"employee_password_hash" validate:"required"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

type ExportConfig struct {
	Directory string `mapstructure:"directory"`
}

// LoadConfigFromEnv builds the configuration for container deployments.
func LoadConfigFromEnv() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "production"),
		Server: ServerConfig{
			Port:              getEnvAsInt("HTTP_PORT", 8080),
			BaseURL:           getEnv("HTTP_BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("HTTP_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       getEnvAsDuration("HTTP_IDLE_TIMEOUT", time.Minute),
			WriteTimeout:      getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", StorageDriverSQLite),
			Source:          getEnv("STORAGE_SOURCE", "lead-tracker.db"),
			MaxOpenConns:    getEnvAsInt("STORAGE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("STORAGE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("STORAGE_CONN_MAX_LIFETIME", 30*time.Minute),
			Redis: RedisConfig{
				Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
				Password:  getEnv("REDIS_PASSWORD", ""),
				DB:        getEnvAsInt("REDIS_DB", 0),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "lead-tracker:"),
			},
		},
		Session: SessionConfig{
			AdminEmail:           getEnv("SESSION_ADMIN_EMAIL", ""),
			AdminPasswordHash:    getEnv("SESSION_ADMIN_PASSWORD_HASH", ""),
			EmployeePasswordHash: getEnv("SESSION_EMPLOYEE_PASSWORD_HASH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Export: ExportConfig{
			Directory: getEnv("EXPORT_DIRECTORY", "."),
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Session.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("session config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverSQLite, StorageDriverPostgres:
		if c.Source == "" {
			return fmt.Errorf("source is required for driver %s", c.Driver)
		}
		if c.MaxIdleConns > c.MaxOpenConns {
			return errors.New("max_idle_conns cannot be greater than max_open_conns")
		}
		return nil
	case StorageDriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for driver redis")
		}
		return nil
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
}

func (c *StorageConfig) GetDSN() string {
	return c.Source
}

func (c *SessionConfig) Validate() error {
	if c.AdminEmail == "" {
		return errors.New("admin_email is required")
	}
	if c.AdminPasswordHash == "" {
		return errors.New("admin_password_hash is required")
	}
	if c.EmployeePasswordHash == "" {
		return errors.New("employee_password_hash is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
