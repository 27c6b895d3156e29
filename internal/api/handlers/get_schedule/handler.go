package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
	"github.com/campusbook/VenueBookingService/internal/domain"
	"github.com/campusbook/VenueBookingService/internal/service/bookings"
)

const (
	msgInvalidRange = "invalid from/to dates, YYYY-MM-DD expected"

	// Окно расписания по умолчанию, если to не указан
	defaultScheduleDays = 7
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

// Handle GET /api/v1/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Мастер-расписание: активные брони всех площадок, пересекающиеся с периодом
// [from, to). Граница to исключается, как и везде в движке.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to := from.AddDate(0, 0, defaultScheduleDays)
	if rawTo := query.Get("to"); rawTo != "" {
		to, err = time.Parse(domain.DateFormat, rawTo)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
	}

	result, err := h.service.GetSchedule(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid range: from=%s, to=%s", query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /schedule - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
