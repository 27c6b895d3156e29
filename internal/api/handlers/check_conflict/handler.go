package check_conflict

import (
	"errors"
	"net/http"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
	checkConflict "github.com/campusbook/VenueBookingService/internal/usecase/check_conflict"
)

const (
	msgMissingFields      = "missing required fields: clubId, startTime, endTime"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamps  = "invalid startTime or endTime, RFC 3339 expected"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET|POST /api/v1/bookings/conflict-check
//
// Консультативная проверка перед отправкой формы: только чтение, без записей.
// GET принимает query-параметры (venueIds через запятую), POST - JSON body.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		req *CheckConflictRequest
		err error
	)

	if r.Method == http.MethodGet {
		req, err = FromQuery(r.URL.Query())
		if err != nil {
			h.logger.Warn("GET /bookings/conflict-check - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	} else {
		req = &CheckConflictRequest{}
		if err := handlers.DecodeJSON(r, req); err != nil {
			h.logger.Warn("POST /bookings/conflict-check - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	if req.ClubID == 0 || req.StartTime == "" || req.EndTime == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("conflict-check - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamps)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("conflict-check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("conflict-check - Failed: club_id=%d, error=%v", req.ClubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckConflictResponse{
		HasConflict: result.HasConflict,
		Message:     result.Message,
	})
}
