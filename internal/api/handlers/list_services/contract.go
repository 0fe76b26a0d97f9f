package list_services

import "github.com/shvic/booking-service/internal/domain"

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	List() []domain.Service
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
