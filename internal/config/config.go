package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Database         DatabaseConfig         `toml:"database"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	DirectoryService DirectoryServiceConfig `toml:"directory_service"`
	Redis            RedisConfig            `toml:"redis"`
	Scheduling       SchedulingConfig       `toml:"scheduling"`
	Billing          BillingConfig          `toml:"billing"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	Format     string `toml:"format"` // text | json
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DirectoryServiceConfig параметры клиента справочного сервиса
type DirectoryServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig параметры кэша справочных данных
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// SchedulingConfig параметры создания записей
type SchedulingConfig struct {
	SeriesParallelism      int `toml:"series_parallelism"` // 1 = последовательно
	DefaultDurationMinutes int `toml:"default_duration_minutes"`
}

// BillingConfig параметры субаренды
type BillingConfig struct {
	CascadeCancellation bool `toml:"cascade_cancellation"`
}

// Load читает конфигурацию из TOML файла.
// Перед чтением подгружается .env (если есть), затем переменные окружения
// DB_PASSWORD, REDIS_PASSWORD и DIRECTORY_SERVICE_URL перекрывают значения из файла.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("DIRECTORY_SERVICE_URL"); v != "" {
		c.DirectoryService.URL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "text"
	}
	if c.Logs.MaxSizeMB == 0 {
		c.Logs.MaxSizeMB = 100
	}
	if c.Logs.MaxBackups == 0 {
		c.Logs.MaxBackups = 5
	}
	if c.Logs.MaxAgeDays == 0 {
		c.Logs.MaxAgeDays = 30
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "clinic_scheduling"
	}

	if c.DirectoryService.Timeout == 0 {
		c.DirectoryService.Timeout = 5
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 300
	}

	if c.Scheduling.SeriesParallelism == 0 {
		c.Scheduling.SeriesParallelism = 1
	}
	if c.Scheduling.DefaultDurationMinutes == 0 {
		c.Scheduling.DefaultDurationMinutes = 50
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 1 || c.Database.MaxIdleConns < 1 {
		return fmt.Errorf("%w: database pool sizes must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns must not exceed max_open_conns", ErrInvalidConfig)
	}
	if c.DirectoryService.URL == "" {
		return fmt.Errorf("%w: directory_service.url is required", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.DirectoryService.URL, "http://") && !strings.HasPrefix(c.DirectoryService.URL, "https://") {
		return fmt.Errorf("%w: directory_service.url must be an http(s) url", ErrInvalidConfig)
	}
	if c.Scheduling.SeriesParallelism < 1 {
		return fmt.Errorf("%w: scheduling.series_parallelism must be at least 1", ErrInvalidConfig)
	}
	if c.Scheduling.DefaultDurationMinutes < 1 {
		return fmt.Errorf("%w: scheduling.default_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.TTLSeconds < 1 {
		return fmt.Errorf("%w: redis.ttl_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
