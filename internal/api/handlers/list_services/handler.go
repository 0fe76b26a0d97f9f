package list_services

import (
	"net/http"

	"github.com/shvic/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.List()

	h.logger.Info("GET /services - %d services listed", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services))
}
