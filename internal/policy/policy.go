// Package policy содержит чистые правила бронирования площадок.
//
// Правила не имеют побочных эффектов и состояния: и консультативная проверка
// перед отправкой формы, и авторитативная валидация при создании брони
// вызывают один и тот же код, поэтому расхождение между ними невозможно.
// Текущее время всегда передается параметром.
package policy

import (
	"fmt"
	"math"
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// MinAdvanceDays возвращает минимальное количество дней предварительной
// записи для типа мероприятия
func MinAdvanceDays(eventType domain.EventType) (int, error) {
	days, ok := domain.MinAdvanceDaysByEventType[eventType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	return days, nil
}

// ValidateAdvanceNotice проверяет, что до начала мероприятия остается
// не меньше минимального количества дней для его типа.
// Количество дней считается как ceil((start - now) / 24h).
func ValidateAdvanceNotice(eventType domain.EventType, start time.Time, now time.Time) error {
	minDays, err := MinAdvanceDays(eventType)
	if err != nil {
		return err
	}

	leadDays := int(math.Ceil(start.Sub(now).Hours() / 24))
	if leadDays < minDays {
		return fmt.Errorf("%w: %s events must be booked at least %d days in advance",
			ErrAdvanceNotice, eventType, minDays)
	}

	return nil
}

// ValidateOperatingHours проверяет, что интервал укладывается в рабочие часы.
// Выходные: начало не раньше 08:00, будни: не раньше 16:00 (локальное время
// кампуса). Оба окна закрываются в полночь, конец всегда позже начала.
func ValidateOperatingHours(start, end time.Time, loc *time.Location) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrOperatingHours)
	}

	localStart := start.In(loc)
	opening := openingMinutes(localStart.Weekday())

	startMinutes := localStart.Hour()*60 + localStart.Minute()
	if startMinutes < opening {
		return fmt.Errorf("%w: bookings on %s open at %02d:%02d",
			ErrOperatingHours, dayKind(localStart.Weekday()), opening/60, opening%60)
	}

	// Окно закрывается в полночь: конец не позже начала следующих суток
	midnight := time.Date(localStart.Year(), localStart.Month(), localStart.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, 1)
	if end.In(loc).After(midnight) {
		return fmt.Errorf("%w: bookings must end by midnight", ErrOperatingHours)
	}

	return nil
}

// ValidateCapacity проверяет, что ожидаемое число участников не превышает
// вместимость площадки. Проверяется только при создании брони.
func ValidateCapacity(venue *domain.Venue, expectedAttendees int) error {
	if !venue.FitsAttendees(expectedAttendees) {
		return fmt.Errorf("%w: expected attendees (%d) exceed capacity of %s (%d)",
			ErrCapacityExceeded, expectedAttendees, venue.Name, venue.Capacity)
	}
	return nil
}

// InitialStatus возвращает статус новой брони по категории площадки.
// Вычисляется один раз на площадку при создании: батч может смешивать
// approved и pending строки.
func InitialStatus(category domain.VenueCategory) domain.BookingStatus {
	if category == domain.CategoryAutoApproval {
		return domain.StatusApproved
	}
	return domain.StatusPending
}

func openingMinutes(day time.Weekday) int {
	if day == time.Saturday || day == time.Sunday {
		return domain.WeekendOpeningMinutes
	}
	return domain.WeekdayOpeningMinutes
}

func dayKind(day time.Weekday) string {
	if day == time.Saturday || day == time.Sunday {
		return "weekends"
	}
	return "weekdays"
}
