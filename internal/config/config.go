package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Session  SessionConfig  `toml:"session"`
	TurboSMS TurboSMSConfig `toml:"turbosms"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки встраиваемой БД (SQLite)
type DatabaseConfig struct {
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig рабочее окно и шаг сетки слотов
type BookingConfig struct {
	OpenTime        string `toml:"open_time"`
	CloseTime       string `toml:"close_time"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
}

// AdminConfig доступ к админке
type AdminConfig struct {
	Password string `toml:"password"`
}

// SessionConfig параметры подписанной сессионной cookie
type SessionConfig struct {
	Name   string `toml:"name"`
	Secret string `toml:"secret"`
}

// TurboSMSConfig параметры SMS-шлюза TurboSMS (timeout в секундах)
type TurboSMSConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Sender  string `toml:"sender"`
	Timeout int    `toml:"timeout"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Path:            "appointments.db",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "brb-booking-service",
		},
		Booking: BookingConfig{
			OpenTime:        "10:00",
			CloseTime:       "18:00",
			SlotStepMinutes: 30,
		},
		Session: SessionConfig{
			Name: "brb_session",
		},
		TurboSMS: TurboSMSConfig{
			URL:     "https://api.turbosms.ua/message/send.json",
			Timeout: 5,
		},
	}
}

func (c *Config) validate() error {
	if c.Admin.Password == "" {
		return fmt.Errorf("config: admin.password is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: session.secret is required")
	}
	if c.Booking.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: booking.slot_step_minutes must be positive")
	}
	return nil
}
