package list_clubs

import (
	"context"

	"github.com/campusbook/VenueBookingService/internal/service/catalog"
)

type CatalogService interface {
	ListClubs(ctx context.Context) (*catalog.ClubListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
