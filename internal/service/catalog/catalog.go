package catalog

import (
	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
)

// Catalog статический каталог услуг
//
// Загружается один раз при старте процесса из конфигурации и далее
// только читается, поэтому не требует синхронизации.
type Catalog struct {
	services []domain.Service
	byID     map[string]domain.Service
}

// New создает каталог из конфигурации
// Порядок услуг сохраняется как в конфигурации
func New(cfg config.CatalogConfig) (*Catalog, error) {
	if len(cfg.Services) == 0 {
		return nil, ErrEmptyCatalog
	}

	services := make([]domain.Service, 0, len(cfg.Services))
	byID := make(map[string]domain.Service, len(cfg.Services))

	for _, svc := range cfg.Services {
		service := domain.Service{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Description:     svc.Description,
		}
		services = append(services, service)
		byID[service.ID] = service
	}

	return &Catalog{
		services: services,
		byID:     byID,
	}, nil
}

// List возвращает все услуги в порядке конфигурации
func (c *Catalog) List() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// GetByID возвращает услугу по идентификатору
func (c *Catalog) GetByID(id string) (*domain.Service, error) {
	svc, ok := c.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}
