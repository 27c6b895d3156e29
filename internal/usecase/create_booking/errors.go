package create_booking

import (
	"errors"
	"fmt"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrAdvanceNotice возвращается, когда запрос нарушает минимальный срок
	// предварительной записи для типа мероприятия
	ErrAdvanceNotice = errors.New("create_booking: advance notice violation")

	// ErrOperatingHours возвращается, когда интервал выходит за рабочие часы
	ErrOperatingHours = errors.New("create_booking: operating hours violation")

	// ErrVenueNotFound возвращается, когда хотя бы одна площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: one or more venues not found")

	// ErrClubNotFound возвращается, когда клуб не найден
	ErrClubNotFound = errors.New("create_booking: club not found")

	// ErrConflict возвращается, когда хотя бы одна площадка занята активной
	// бронью, пересекающейся с запрошенным интервалом. Запрос отклоняется
	// целиком, ни одна строка не создается.
	ErrConflict = errors.New("create_booking: venue conflict")

	// ErrCapacityExceeded возвращается, когда ожидаемое число участников
	// превышает вместимость хотя бы одной запрошенной площадки
	ErrCapacityExceeded = errors.New("create_booking: capacity exceeded")

	// ErrStorageUnavailable возвращается при отказе хранилища.
	// Отказ проверки конфликтов никогда не трактуется как их отсутствие.
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")

	// ErrPartialFailure возвращается при отказе вставки в середине батча
	ErrPartialFailure = errors.New("create_booking: partial batch failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// PartialFailureError отказ вставки в середине мультиплощадочного батча.
// Несет префикс уже созданных строк и площадку, на которой батч оборвался,
// чтобы вызывающий мог сверить состояние и не пересоздавать весь батч.
//
// При транзакционном менеджере префикс откатывается вместе с транзакцией;
// ошибка в любом случае называет площадку отказа и попытанный префикс.
type PartialFailureError struct {
	BatchID         string
	FailedVenueID   int64
	FailedVenueName string
	Created         []*domain.Booking
	Cause           error
}

// Error реализует интерфейс error
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("create_booking: failed to book venue %q (batch %s, %d row(s) created before failure): %v",
		e.FailedVenueName, e.BatchID, len(e.Created), e.Cause)
}

// Unwrap позволяет errors.Is(err, ErrPartialFailure)
func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}
