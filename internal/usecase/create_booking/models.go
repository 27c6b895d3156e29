package create_booking

import (
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
// Один запрос может бронировать несколько площадок на один интервал
type Request struct {
	ClubID            int64            // ID клуба-организатора
	UserID            int64            // ID пользователя, отправившего запрос
	VenueIDs          []int64          // ID площадок (минимум одна)
	EventType         domain.EventType // Тип мероприятия
	EventName         string           // Название мероприятия
	StartTime         time.Time        // Начало интервала
	EndTime           time.Time        // Конец интервала (строго позже начала)
	ExpectedAttendees int              // Ожидаемое число участников
}

// CreatedBooking созданная строка бронирования
type CreatedBooking struct {
	ID                int64
	ClubID            int64
	VenueID           int64
	UserID            int64
	EventName         string
	EventType         string
	StartTime         time.Time
	EndTime           time.Time
	ExpectedAttendees int
	Status            string // approved для auto_approval площадок, иначе pending
	BatchID           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Response модель ответа: все строки, созданные из одного запроса,
// разделяют один BatchID
type Response struct {
	BatchID  string
	Bookings []CreatedBooking
}

func fromDomainBooking(b *domain.Booking) CreatedBooking {
	return CreatedBooking{
		ID:                b.ID,
		ClubID:            b.ClubID,
		VenueID:           b.VenueID,
		UserID:            b.UserID,
		EventName:         b.EventName,
		EventType:         string(b.EventType),
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		ExpectedAttendees: b.ExpectedAttendees,
		Status:            string(b.Status),
		BatchID:           b.BatchID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
