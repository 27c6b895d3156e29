package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/VenueBookingService/internal/domain"
	"github.com/campusbook/VenueBookingService/internal/policy"
	"github.com/campusbook/VenueBookingService/internal/service/conflicts"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	resolver     ConflictResolver
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	resolver ConflictResolver,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		resolver:     resolver,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Порядок проверок: структура запроса, срок предварительной записи, рабочие
// часы, существование площадок и клуба, конфликты, вместимость - и только
// затем вставка строк. Проверка конфликтов и вставка всего батча выполняются
// в одной сериализуемой транзакции: два одновременных запроса на одну
// площадку и пересекающийся интервал не могут пройти проверку оба.
//
// Вместимость проверяется после конфликтов: запрос, нарушающий оба правила,
// получает ошибку конфликта, как в действующем деплое.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: club=%d, user=%d, venues=%v, type=%s, interval=[%s, %s)",
		req.ClubID, req.UserID, req.VenueIDs, req.EventType,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Минимальный срок предварительной записи по типу мероприятия
	if err := policy.ValidateAdvanceNotice(req.EventType, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: advance notice check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAdvanceNotice, err)
	}

	// 3. Рабочие часы площадок
	if err := policy.ValidateOperatingHours(req.StartTime, req.EndTime, uc.location); err != nil {
		uc.logger.Warn("CreateBooking: operating hours check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrOperatingHours, err)
	}

	// 4. Разрешаем площадки
	venues, err := uc.catalogRepo.GetVenuesByIDs(ctx, req.VenueIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get venues %v: %v", req.VenueIDs, err)
		return nil, fmt.Errorf("%w: failed to get venues: %v", ErrInternal, err)
	}
	if len(venues) != len(req.VenueIDs) {
		uc.logger.Warn("CreateBooking: requested %d venues, found %d", len(req.VenueIDs), len(venues))
		return nil, ErrVenueNotFound
	}

	venuesByID := make(map[int64]*domain.Venue, len(venues))
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	// 5. Разрешаем клуб
	if _, err := uc.catalogRepo.GetClubByID(ctx, req.ClubID); err != nil {
		uc.logger.Warn("CreateBooking: club id=%d lookup failed: %v", req.ClubID, err)
		return nil, ErrClubNotFound
	}

	batchID := uuid.NewString()
	created := make([]*domain.Booking, 0, len(req.VenueIDs))

	// 6. Проверка конфликтов и вставка батча в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Конфликты по всем площадкам одним запросом
		result, err := uc.resolver.FindConflicts(txCtx, req.VenueIDs, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, conflicts.ErrStorageUnavailable) {
				uc.logger.Error("CreateBooking: conflict check unavailable: %v", err)
				return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
			}
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if result.HasConflict {
			uc.logger.Warn("CreateBooking: conflict on venues %v", result.VenueIDs)
			return fmt.Errorf("%w: %s", ErrConflict, result.Message)
		}

		// 6.2. Вместимость каждой площадки
		for _, venueID := range req.VenueIDs {
			if err := policy.ValidateCapacity(venuesByID[venueID], req.ExpectedAttendees); err != nil {
				uc.logger.Warn("CreateBooking: capacity check failed for venue id=%d: %v", venueID, err)
				return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
			}
		}

		// 6.3. Вставляем по одной строке на площадку, строго в порядке запроса:
		// при отказе в середине цикла префикс уже созданных строк детерминирован
		for _, venueID := range req.VenueIDs {
			venue := venuesByID[venueID]

			booking := &domain.Booking{
				ClubID:            req.ClubID,
				VenueID:           venueID,
				UserID:            req.UserID,
				EventName:         req.EventName,
				EventType:         req.EventType,
				StartTime:         req.StartTime,
				EndTime:           req.EndTime,
				ExpectedAttendees: req.ExpectedAttendees,
				Status:            policy.InitialStatus(venue.Category),
				BatchID:           batchID,
			}

			row, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to book venue id=%d (batch %s): %v",
					venueID, batchID, err)
				return &PartialFailureError{
					BatchID:         batchID,
					FailedVenueID:   venueID,
					FailedVenueName: venue.Name,
					Created:         created,
					Cause:           err,
				}
			}

			created = append(created, row)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created %d booking(s), batch=%s", len(created), batchID)

	resp := &Response{
		BatchID:  batchID,
		Bookings: make([]CreatedBooking, 0, len(created)),
	}
	for _, b := range created {
		resp.Bookings = append(resp.Bookings, fromDomainBooking(b))
	}

	return resp, nil
}
