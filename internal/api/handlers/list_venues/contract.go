package list_venues

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/service/catalog"
)

type CatalogService interface {
	ListVenues(ctx context.Context) (*catalog.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
