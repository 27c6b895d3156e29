package check_conflict

import (
	"context"
	"time"

	"github.com/campusbook/VenueBookingService/internal/service/conflicts"
)

// ConflictResolver интерфейс резолвера конфликтов
// Тот же резолвер, что и авторитативный гейт в создании брони
type ConflictResolver interface {
	FindConflicts(ctx context.Context, venueIDs []int64, start, end time.Time) (*conflicts.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
