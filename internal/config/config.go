package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server" envPrefix:"SERVER_"`
	Database        DatabaseConfig        `toml:"database" envPrefix:"DB_"`
	Redis           RedisConfig           `toml:"redis" envPrefix:"REDIS_"`
	Logs            LogsConfig            `toml:"logs" envPrefix:"LOG_"`
	Metrics         MetricsConfig         `toml:"metrics" envPrefix:"METRICS_"`
	PropertyService PropertyServiceConfig `toml:"property_service" envPrefix:"PROPERTY_SERVICE_"`
	Calendar        CalendarConfig        `toml:"calendar" envPrefix:"CALENDAR_"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"NAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis (хранилище gesture-сессий)
type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"FILE"`
	Level string `toml:"level" env:"LEVEL"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// PropertyServiceConfig настройки клиента PropertyService (таймаут в секундах)
type PropertyServiceConfig struct {
	URL        string `toml:"url" env:"URL"`
	Timeout    int    `toml:"timeout" env:"TIMEOUT"`
	RetryCount int    `toml:"retry_count" env:"RETRY_COUNT"`
}

// CalendarConfig настройки отображения календаря
type CalendarConfig struct {
	// PixelsPerDay ширина одного дня для каждого уровня зума (индекс = zoom)
	PixelsPerDay []float64 `toml:"pixels_per_day" env:"PIXELS_PER_DAY" envSeparator:","`
	DefaultZoom  int       `toml:"default_zoom" env:"DEFAULT_ZOOM"`
	MaxDays      int       `toml:"max_days" env:"MAX_DAYS"`
	// GestureTTL время жизни незавершённого drag/resize в секундах
	GestureTTL int `toml:"gesture_ttl" env:"GESTURE_TTL"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения поверх
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
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
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "stay_calendar",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "stay-calendar",
		},
		PropertyService: PropertyServiceConfig{
			URL:        "http://localhost:8081",
			Timeout:    5,
			RetryCount: 2,
		},
		Calendar: CalendarConfig{
			PixelsPerDay: []float64{24, 48, 96},
			DefaultZoom:  1,
			MaxDays:      93,
			GestureTTL:   300,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: database.max_open_conns must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns must be in 0..max_open_conns", ErrInvalidConfig)
	}
	if len(c.Calendar.PixelsPerDay) == 0 {
		return fmt.Errorf("%w: calendar.pixels_per_day must not be empty", ErrInvalidConfig)
	}
	for i, px := range c.Calendar.PixelsPerDay {
		if px <= 0 {
			return fmt.Errorf("%w: calendar.pixels_per_day[%d] must be positive", ErrInvalidConfig, i)
		}
	}
	if c.Calendar.DefaultZoom < 0 || c.Calendar.DefaultZoom >= len(c.Calendar.PixelsPerDay) {
		return fmt.Errorf("%w: calendar.default_zoom out of range", ErrInvalidConfig)
	}
	if c.Calendar.MaxDays <= 0 {
		return fmt.Errorf("%w: calendar.max_days must be positive", ErrInvalidConfig)
	}
	if c.Calendar.GestureTTL <= 0 {
		return fmt.Errorf("%w: calendar.gesture_ttl must be positive", ErrInvalidConfig)
	}
	return nil
}
