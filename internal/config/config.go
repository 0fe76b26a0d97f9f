package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/shvic/booking-service/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig    `toml:"server"`
	Database      DatabaseConfig  `toml:"database"`
	Logs          LogsConfig      `toml:"logs"`
	Metrics       MetricsConfig   `toml:"metrics"`
	Booking       BookingConfig   `toml:"booking"`
	Admin         AdminConfig     `toml:"admin"`
	PaymentGate   ServiceEndpoint `toml:"payment_gateway"`
	Notifications ServiceEndpoint `toml:"notification_service"`
	Catalog       CatalogConfig   `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig политика бронирования
// Константы рабочего дня и ограничения параметризованы, а не зашиты в код
type BookingConfig struct {
	OpenHour                int `toml:"open_hour"`
	CloseHour               int `toml:"close_hour"`
	MinLeadDays             int `toml:"min_lead_days"`
	AdvanceBookingDays      int `toml:"advance_booking_days"` // 0 = без ограничения
	MinBookingNoticeMinutes int `toml:"min_booking_notice_minutes"`
	PendingTTLMinutes       int `toml:"pending_ttl_minutes"`
}

// AdminConfig список идентификаторов администраторов
type AdminConfig struct {
	UserIDs []string `toml:"user_ids"`
}

// ServiceEndpoint адрес внешнего сервиса-коллаборатора
type ServiceEndpoint struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CatalogConfig статический каталог услуг
type CatalogConfig struct {
	Services []CatalogService `toml:"service"`
}

// CatalogService описание услуги в каталоге
type CatalogService struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	DurationMinutes int     `toml:"duration_minutes"`
	Price           float64 `toml:"price"`
	Description     string  `toml:"description"`
}

// Load загружает конфигурацию из TOML файла и валидирует её
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
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/booking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "booking-service",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			OpenHour:                domain.DefaultOpenHour,
			CloseHour:               domain.DefaultCloseHour,
			MinLeadDays:             domain.DefaultMinLeadDays,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			PendingTTLMinutes:       domain.DefaultPendingTTLMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Booking.OpenHour < 0 || c.Booking.OpenHour > 23 {
		return fmt.Errorf("config: booking.open_hour must be in [0, 23], got %d", c.Booking.OpenHour)
	}
	// Верхняя граница 23: слот, заканчивающийся ровно в полночь,
	// невыразим во времени вида HH:MM
	if c.Booking.CloseHour < 1 || c.Booking.CloseHour > 23 {
		return fmt.Errorf("config: booking.close_hour must be in [1, 23], got %d", c.Booking.CloseHour)
	}
	if c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("config: booking.open_hour (%d) must be before booking.close_hour (%d)",
			c.Booking.OpenHour, c.Booking.CloseHour)
	}
	if c.Booking.PendingTTLMinutes <= 0 {
		return fmt.Errorf("config: booking.pending_ttl_minutes must be positive, got %d", c.Booking.PendingTTLMinutes)
	}

	seen := make(map[string]struct{}, len(c.Catalog.Services))
	for _, svc := range c.Catalog.Services {
		if svc.ID == "" {
			return fmt.Errorf("config: catalog service without id")
		}
		if _, ok := seen[svc.ID]; ok {
			return fmt.Errorf("config: duplicate catalog service id %q", svc.ID)
		}
		seen[svc.ID] = struct{}{}

		if svc.DurationMinutes < domain.MinServiceDurationMinutes || svc.DurationMinutes > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("config: catalog service %q duration_minutes must be in [%d, %d], got %d",
				svc.ID, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes, svc.DurationMinutes)
		}
		if svc.Price < 0 {
			return fmt.Errorf("config: catalog service %q price must be non-negative, got %f", svc.ID, svc.Price)
		}
	}

	return nil
}
