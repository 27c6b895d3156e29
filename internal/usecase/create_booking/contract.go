package create_booking

import (
	"context"
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
	"github.com/campusbook/VenueBookingService/internal/service/conflicts"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс справочника площадок и клубов
type CatalogRepository interface {
	GetVenuesByIDs(ctx context.Context, ids []int64) ([]*domain.Venue, error)
	GetClubByID(ctx context.Context, id int64) (*domain.Club, error)
}

// ConflictResolver интерфейс резолвера конфликтов
// Тот же резолвер обслуживает консультативную проверку - отдельной эвристики нет
type ConflictResolver interface {
	FindConflicts(ctx context.Context, venueIDs []int64, start, end time.Time) (*conflicts.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
