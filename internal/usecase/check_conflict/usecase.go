package check_conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/VenueBookingService/internal/service/conflicts"
)

// UseCase use case консультативной проверки конфликтов.
// Только читает: клиент вызывает её до отправки формы, чтобы показать
// предупреждение. Никакой другой валидации и никаких записей.
type UseCase struct {
	resolver ConflictResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver ConflictResolver, logger Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет проверку конфликтов для указанных площадок и интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ClubID <= 0 {
		return nil, fmt.Errorf("%w: clubId is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	// Без площадок проверять нечего - конфликтов нет
	if len(req.VenueIDs) == 0 {
		return &Response{}, nil
	}

	result, err := uc.resolver.FindConflicts(ctx, req.VenueIDs, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, conflicts.ErrStorageUnavailable) {
			uc.logger.Error("CheckConflict: resolver unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return nil, err
	}

	return &Response{
		HasConflict: result.HasConflict,
		Message:     result.Message,
	}, nil
}
