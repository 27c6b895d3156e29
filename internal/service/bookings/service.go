package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
	bookingRepo "github.com/campusbook/VenueBookingService/internal/infra/storage/booking"
	"github.com/campusbook/VenueBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и смены их статуса
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBatch получает все брони одного мультиплощадочного запроса
func (s *Service) GetBatch(ctx context.Context, batchID string) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByBatchID(ctx, batchID)
	if err != nil {
		s.logger.Error("GetBatch: repository error for batch=%s: %v", batchID, err)
		return nil, fmt.Errorf("%w: GetBatch - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetClubBookings получает историю бронирований клуба
// Опционально фильтрует по статусу
func (s *Service) GetClubBookings(ctx context.Context, req *models.GetClubBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClubBookings: fetching bookings for club=%d, status=%v", req.ClubID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetClubBookings: invalid status=%s for club=%d", *req.Status, req.ClubID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClubWithFilter(ctx, domain.ClubBookingsFilter{
		ClubID: req.ClubID,
		Status: domainStatus,
	})
	if err != nil {
		s.logger.Error("GetClubBookings: repository error for club=%d: %v", req.ClubID, err)
		return nil, fmt.Errorf("%w: GetClubBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClubBookings: fetched %d bookings for club=%d", len(bookings), req.ClubID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPendingRequests получает заявки, ожидающие решения администратора
func (s *Service) GetPendingRequests(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("GetPendingRequests: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPendingRequests - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetSchedule получает мастер-расписание: активные брони, пересекающиеся
// с периодом [from, to)
func (s *Service) GetSchedule(ctx context.Context, from, to time.Time) (*models.BookingListResponse, error) {
	if !to.After(from) {
		s.logger.Warn("GetSchedule: invalid range [%s, %s)", from.Format(time.RFC3339), to.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: schedule range end must be after start", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetScheduleRange(ctx, from, to)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for range [%s, %s): %v",
			from.Format(time.RFC3339), to.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus валидирует и применяет переход статуса брони.
//
// Разрешены только переходы pending -> approved и pending -> rejected.
// Правила времени и вместимости при переходе не перепроверяются: они были
// выполнены при создании, а отклонение одной строки батча не требует
// пересмотра её соседей.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, ok := models.ToDomainBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.AdminNote)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d transitioned to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}
