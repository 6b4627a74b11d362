// Package config загружает конфигурацию сервиса из config.toml
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrLoadConfig возвращается при ошибке чтения файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load config file")

	// ErrInvalidConfig возвращается при отсутствии обязательных параметров
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	WhatsApp     WhatsAppConfig     `toml:"whatsapp"`
	Business     BusinessConfig     `toml:"business"`
	Conversation ConversationConfig `toml:"conversation"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis (нужен только при conversation.store = "redis")
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// WhatsAppConfig учетные данные WhatsApp Cloud API
type WhatsAppConfig struct {
	BaseURL       string `toml:"base_url"`
	PhoneNumberID string `toml:"phone_number_id"`
	AccessToken   string `toml:"access_token"`
	VerifyToken   string `toml:"verify_token"`
	Timeout       int    `toml:"timeout"`
}

// BusinessConfig данные салона и его часовой пояс
type BusinessConfig struct {
	Name                string   `toml:"name"`
	Timezone            string   `toml:"timezone"`
	TimezoneFallbacks   []string `toml:"timezone_fallbacks"`
	FixedUTCOffsetHours int      `toml:"fixed_utc_offset_hours"`
	Address             string   `toml:"address"`
	Latitude            float64  `toml:"latitude"`
	Longitude           float64  `toml:"longitude"`
	Instagram           string   `toml:"instagram"`
}

// ConversationConfig настройки хранилища состояний диалогов
type ConversationConfig struct {
	// "memory" или "redis"
	Store string `toml:"store"`

	// TTL состояния диалога в минутах: брошенные диалоги вычищаются
	StateTTLMinutes int `toml:"state_ttl_minutes"`

	// Час, по которому список слотов делится на две страницы
	TimePageSplitHour int `toml:"time_page_split_hour"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
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
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hairdresser-bot"
	}
	if c.WhatsApp.BaseURL == "" {
		c.WhatsApp.BaseURL = "https://graph.facebook.com/v18.0"
	}
	if c.WhatsApp.Timeout == 0 {
		c.WhatsApp.Timeout = 10
	}
	if c.Business.Timezone == "" {
		c.Business.Timezone = "Europe/Istanbul"
	}
	if len(c.Business.TimezoneFallbacks) == 0 {
		c.Business.TimezoneFallbacks = []string{"Turkey"}
	}
	if c.Business.FixedUTCOffsetHours == 0 {
		c.Business.FixedUTCOffsetHours = 3
	}
	if c.Conversation.Store == "" {
		c.Conversation.Store = "memory"
	}
	if c.Conversation.StateTTLMinutes == 0 {
		c.Conversation.StateTTLMinutes = 30
	}
	if c.Conversation.TimePageSplitHour == 0 {
		c.Conversation.TimePageSplitHour = 17
	}
}

// validate проверяет обязательные параметры
// Отсутствие учетных данных WhatsApp - фатальная ошибка запуска
func (c *Config) validate() error {
	if c.WhatsApp.PhoneNumberID == "" {
		return fmt.Errorf("%w: whatsapp.phone_number_id is required", ErrInvalidConfig)
	}
	if c.WhatsApp.AccessToken == "" {
		return fmt.Errorf("%w: whatsapp.access_token is required", ErrInvalidConfig)
	}
	if c.WhatsApp.VerifyToken == "" {
		return fmt.Errorf("%w: whatsapp.verify_token is required", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Conversation.Store != "memory" && c.Conversation.Store != "redis" {
		return fmt.Errorf("%w: conversation.store must be \"memory\" or \"redis\"", ErrInvalidConfig)
	}
	if c.Conversation.Store == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when conversation.store = \"redis\"", ErrInvalidConfig)
	}
	return nil
}
