package list_venues

import (
	"net/http"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues
// Справочник площадок для формы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListVenues(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
