package get_club_bookings

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetClubBookings(ctx context.Context, req *models.GetClubBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
