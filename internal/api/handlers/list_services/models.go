package list_services

import "github.com/shvic/booking-service/internal/domain"

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description,omitempty"`
}

// ListServicesResponse HTTP модель ответа со списком услуг
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomain конвертирует услуги каталога в HTTP модель
func FromDomain(services []domain.Service) *ListServicesResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Description:     s.Description,
		}
	}
	return &ListServicesResponse{Services: result}
}
