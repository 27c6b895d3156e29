package check_conflict

import "time"

// Request модель консультативной проверки конфликтов
type Request struct {
	ClubID    int64     // ID клуба-организатора
	VenueIDs  []int64   // Площадки для проверки (может быть пустым)
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
}

// Response результат проверки
// Два вызова с одинаковыми аргументами без записей между ними дают
// одинаковый результат
type Response struct {
	HasConflict bool
	Message     string
}
