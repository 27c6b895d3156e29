package domain

// Minimum advance notice in lead days, keyed by event type
const (
	MinAdvanceDaysCoCurricular = 30
	MinAdvanceDaysOpenForAll   = 20
	MinAdvanceDaysClosedClub   = 1
)

// Operating hours: earliest allowed start, minutes from midnight local time.
// Both windows close at midnight.
const (
	WeekendOpeningMinutes = 8 * 60  // 08:00
	WeekdayOpeningMinutes = 16 * 60 // 16:00
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinAdvanceDaysByEventType минимальное количество дней предварительной записи
// по типу мероприятия
var MinAdvanceDaysByEventType = map[EventType]int{
	EventCoCurricular: MinAdvanceDaysCoCurricular,
	EventOpenForAll:   MinAdvanceDaysOpenForAll,
	EventClosedClub:   MinAdvanceDaysClosedClub,
}

// ActiveStatuses список статусов, удерживающих слот площадки
// Используется при проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
