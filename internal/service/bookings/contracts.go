package bookings

import (
	"context"
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBatchID(ctx context.Context, batchID string) ([]*domain.Booking, error)
	GetByClubWithFilter(ctx context.Context, filter domain.ClubBookingsFilter) ([]*domain.Booking, error)
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	GetScheduleRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, adminNote *string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
