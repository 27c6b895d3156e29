package policy

import "errors"

var (
	// ErrAdvanceNotice возвращается, когда до начала мероприятия остается
	// меньше минимального количества дней для его типа
	ErrAdvanceNotice = errors.New("policy: advance_notice violation")

	// ErrOperatingHours возвращается, когда интервал бронирования выходит
	// за рамки рабочих часов площадок
	ErrOperatingHours = errors.New("policy: operating_hours violation")

	// ErrCapacityExceeded возвращается, когда ожидаемое число участников
	// превышает вместимость площадки
	ErrCapacityExceeded = errors.New("policy: capacity exceeded")

	// ErrUnknownEventType возвращается для неизвестного типа мероприятия
	ErrUnknownEventType = errors.New("policy: unknown event type")
)
