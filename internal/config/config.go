package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Dashboard DashboardConfig `toml:"dashboard"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DashboardConfig бизнес-параметры дашборда
type DashboardConfig struct {
	// Timezone часовой пояс, в котором считаются периоды и "сегодня"
	Timezone string `toml:"timezone"`
	// WeekStart первый день недели: "sunday" или "monday"
	WeekStart string `toml:"week_start"`
	// SlotListPastDays и SlotListFutureDays окно списка слотов по умолчанию
	SlotListPastDays   int `toml:"slot_list_past_days"`
	SlotListFutureDays int `toml:"slot_list_future_days"`
}

// CORSConfig параметры CORS
type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
}

// RateLimitConfig ограничение частоты запросов на IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	TrustProxy        bool    `toml:"trust_proxy"` // X-Forwarded-For только за своим прокси
}

// Load читает .env рядом с файлом конфигурации (если он есть), затем TOML,
// после чего переменные окружения DB_* перекрывают секцию [database]
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "localhost",
			Port:            3306,
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "call-dashboard",
		},
		Dashboard: DashboardConfig{
			Timezone:           "Asia/Kolkata",
			WeekStart:          "sunday",
			SlotListPastDays:   7,
			SlotListFutureDays: 2,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 20,
			Burst:             40,
		},
	}
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("DB_DRIVER", &c.Database.Driver)
	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("DB_PATH", &c.Database.Path)
	setString("LOG_LEVEL", &c.Logs.Level)

	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Database.Port = port
	}

	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if _, err := c.Dashboard.Location(); err != nil {
		return err
	}
	if _, err := c.Dashboard.WeekStartDay(); err != nil {
		return err
	}
	if c.Dashboard.SlotListPastDays < 0 || c.Dashboard.SlotListFutureDays < 0 {
		return fmt.Errorf("%w: dashboard slot list window must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	return nil
}

// Location часовой пояс дашборда
func (d DashboardConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard.timezone %q: %v", ErrInvalidConfig, d.Timezone, err)
	}
	return loc, nil
}

// WeekStartDay первый день недели для фильтра "Week"
func (d DashboardConfig) WeekStartDay() (time.Weekday, error) {
	switch d.WeekStart {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("%w: dashboard.week_start must be sunday or monday, got %q", ErrInvalidConfig, d.WeekStart)
	}
}
