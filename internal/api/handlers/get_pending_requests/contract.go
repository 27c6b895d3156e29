package get_pending_requests

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPendingRequests(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
