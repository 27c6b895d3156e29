package create_booking

import (
	"errors"
	"net/http"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
	"github.com/campusbook/VenueBookingService/internal/api/middleware"
	createBooking "github.com/campusbook/VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamps  = "invalid startTime or endTime, RFC 3339 expected"
	msgVenueNotFound      = "one or more venues not found"
	msgClubNotFound       = "club not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamps)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrAdvanceNotice),
			errors.Is(err, createBooking.ErrOperatingHours),
			errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Rejected: club_id=%d, error=%v", req.ClubID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: club_id=%d, venues=%v", req.ClubID, req.VenueIDs)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrClubNotFound):
			h.logger.Warn("POST /bookings - Club not found: club_id=%d", req.ClubID)
			handlers.RespondNotFound(w, msgClubNotFound)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Conflict: club_id=%d, venues=%v", req.ClubID, req.VenueIDs)
			handlers.RespondError(w, http.StatusConflict, err.Error())

		case errors.Is(err, createBooking.ErrPartialFailure):
			h.logger.Error("POST /bookings - Partial failure: club_id=%d, error=%v", req.ClubID, err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())

		case errors.Is(err, createBooking.ErrStorageUnavailable):
			h.logger.Error("POST /bookings - Storage unavailable: club_id=%d, error=%v", req.ClubID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: club_id=%d, error=%v", req.ClubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created %d booking(s): batch_id=%s, club_id=%d",
		len(result.Bookings), result.BatchID, req.ClubID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
