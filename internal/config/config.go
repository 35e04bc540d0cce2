package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Building BuildingConfig `toml:"building"`
	API      APIConfig      `toml:"api"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BuildingConfig параметры здания и расписания прачечной
// Часы работы настраиваемые: у исходных ревизий расходились 06:00 и 07:00,
// поэтому значение задаётся конфигом, а не константой
type BuildingConfig struct {
	Timezone  string `toml:"timezone"`   // например "Europe/Bucharest"
	OpenTime  string `toml:"open_time"`  // "HH:MM", начало рабочего окна
	CloseTime string `toml:"close_time"` // "HH:MM", конец рабочего окна
}

// APIConfig настройки внешнего API слоя
type APIConfig struct {
	RateLimitRPS      float64 `toml:"rate_limit_rps"`
	RateLimitBurst    int     `toml:"rate_limit_burst"`
	AvailabilityCache int     `toml:"availability_cache_seconds"`
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location загружает таймзону здания
func (c *BuildingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "lrm-reservation-service"
	}
	if cfg.Building.Timezone == "" {
		cfg.Building.Timezone = "Europe/Bucharest"
	}
	if cfg.Building.OpenTime == "" {
		cfg.Building.OpenTime = "06:00"
	}
	if cfg.Building.CloseTime == "" {
		cfg.Building.CloseTime = "23:00"
	}
	if cfg.API.RateLimitRPS == 0 {
		cfg.API.RateLimitRPS = 5
	}
	if cfg.API.RateLimitBurst == 0 {
		cfg.API.RateLimitBurst = 10
	}
	if cfg.API.AvailabilityCache == 0 {
		cfg.API.AvailabilityCache = 30
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := cfg.Building.Location(); err != nil {
		return err
	}
	if _, err := time.Parse("15:04", cfg.Building.OpenTime); err != nil {
		return fmt.Errorf("%w: building.open_time must be HH:MM: %v", ErrInvalidConfig, err)
	}
	if _, err := time.Parse("15:04", cfg.Building.CloseTime); err != nil {
		return fmt.Errorf("%w: building.close_time must be HH:MM: %v", ErrInvalidConfig, err)
	}
	if cfg.Building.OpenTime >= cfg.Building.CloseTime {
		return fmt.Errorf("%w: building.open_time must be before close_time", ErrInvalidConfig)
	}
	return nil
}
