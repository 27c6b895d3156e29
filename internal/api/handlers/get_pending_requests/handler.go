package get_pending_requests

import (
	"net/http"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/pending
// Очередь заявок, ожидающих решения администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPendingRequests(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings/pending - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
