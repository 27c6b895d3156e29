package create_booking

import (
	"fmt"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// validateRequest валидирует структуру запроса до обращения к хранилищу.
// Любой отказ здесь означает, что ни одна строка не была создана.
func validateRequest(req *Request) error {
	if req.ClubID <= 0 {
		return fmt.Errorf("%w: clubId must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if len(req.VenueIDs) == 0 {
		return fmt.Errorf("%w: at least one venueId is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.VenueIDs))
	for _, id := range req.VenueIDs {
		if id <= 0 {
			return fmt.Errorf("%w: venueId must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate venueId %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if !domain.IsValidEventType(req.EventType) {
		return fmt.Errorf("%w: invalid eventType %q", ErrInvalidInput, req.EventType)
	}

	if req.EventName == "" {
		return fmt.Errorf("%w: eventName is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.ExpectedAttendees < 0 {
		return fmt.Errorf("%w: expectedAttendees must not be negative", ErrInvalidInput)
	}

	return nil
}
