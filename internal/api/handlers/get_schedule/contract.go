package get_schedule

import (
	"context"
	"time"

	"github.com/campusbook/VenueBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetSchedule(ctx context.Context, from, to time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
