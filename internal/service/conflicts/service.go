package conflicts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// Result результат проверки конфликтов
type Result struct {
	HasConflict bool
	VenueIDs    []int64 // Площадки, занятые хотя бы одной пересекающейся бронью
	Message     string  // Человекочитаемое сообщение с именами занятых площадок
}

// Service резолвер конфликтов бронирования.
//
// Один и тот же резолвер работает и консультативной проверкой перед отправкой
// формы, и авторитативным гейтом внутри создания брони - дублирующихся
// эвристик с риском расхождения нет.
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр резолвера конфликтов
func NewService(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// FindConflicts возвращает множество площадок из venueIDs, занятых хотя бы
// одной активной (не rejected) бронью, пересекающейся с [start, end).
//
// Операция только читает: ни одна строка не создается и не изменяется.
// Ошибка хранилища пробрасывается как ErrStorageUnavailable и никогда
// не превращается в "конфликтов нет".
func (s *Service) FindConflicts(ctx context.Context, venueIDs []int64, start, end time.Time) (*Result, error) {
	if len(venueIDs) == 0 {
		return &Result{}, nil
	}

	overlapping, err := s.bookingRepo.FindOverlapping(ctx, domain.OverlapFilter{
		VenueIDs: venueIDs,
		Start:    start,
		End:      end,
	})
	if err != nil {
		s.logger.Error("FindConflicts: overlap query failed for venues=%v: %v", venueIDs, err)
		return nil, fmt.Errorf("%w: overlap query: %v", ErrStorageUnavailable, err)
	}

	if len(overlapping) == 0 {
		return &Result{}, nil
	}

	// Собираем уникальные ID занятых площадок, сохраняя детерминированный порядок
	seen := make(map[int64]struct{}, len(overlapping))
	conflictIDs := make([]int64, 0, len(overlapping))
	for _, b := range overlapping {
		if _, ok := seen[b.VenueID]; ok {
			continue
		}
		seen[b.VenueID] = struct{}{}
		conflictIDs = append(conflictIDs, b.VenueID)
	}
	sort.Slice(conflictIDs, func(i, j int) bool { return conflictIDs[i] < conflictIDs[j] })

	message, err := s.buildMessage(ctx, conflictIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Warn("FindConflicts: %d venue(s) already booked in [%s, %s)",
		len(conflictIDs), start.Format(time.RFC3339), end.Format(time.RFC3339))

	return &Result{
		HasConflict: true,
		VenueIDs:    conflictIDs,
		Message:     message,
	}, nil
}

func (s *Service) buildMessage(ctx context.Context, conflictIDs []int64) (string, error) {
	venues, err := s.catalogRepo.GetVenuesByIDs(ctx, conflictIDs)
	if err != nil {
		s.logger.Error("FindConflicts: failed to resolve venue names for %v: %v", conflictIDs, err)
		return "", fmt.Errorf("%w: venue lookup: %v", ErrStorageUnavailable, err)
	}

	namesByID := make(map[int64]string, len(venues))
	for _, v := range venues {
		namesByID[v.ID] = v.Name
	}

	names := make([]string, 0, len(conflictIDs))
	for _, id := range conflictIDs {
		if name, ok := namesByID[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("venue %d", id))
		}
	}

	return fmt.Sprintf("Conflict: The following venues are already booked during this time: %s",
		strings.Join(names, ", ")), nil
}
