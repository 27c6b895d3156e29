package catalog

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	ListClubs(ctx context.Context) ([]*domain.Club, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
