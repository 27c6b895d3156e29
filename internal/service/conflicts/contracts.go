package conflicts

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс справочника площадок
type CatalogRepository interface {
	GetVenuesByIDs(ctx context.Context, ids []int64) ([]*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
