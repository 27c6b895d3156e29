package models

import (
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса брони администратором
type UpdateStatusRequest struct {
	Status    string  `json:"status"`
	AdminNote *string `json:"adminNote,omitempty"`
}

// GetClubBookingsRequest запрос на получение бронирований клуба
type GetClubBookingsRequest struct {
	ClubID int64   `json:"clubId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64   `json:"id"`
	ClubID            int64   `json:"clubId"`
	VenueID           int64   `json:"venueId"`
	UserID            int64   `json:"userId"`
	EventName         string  `json:"eventName"`
	EventType         string  `json:"eventType"`
	StartTime         string  `json:"startTime"` // ISO 8601
	EndTime           string  `json:"endTime"`   // ISO 8601
	ExpectedAttendees int     `json:"expectedAttendees"`
	Status            string  `json:"status"`
	BatchID           string  `json:"batchId"`
	AdminNote         *string `json:"adminNote,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		ClubID:            b.ClubID,
		VenueID:           b.VenueID,
		UserID:            b.UserID,
		EventName:         b.EventName,
		EventType:         string(b.EventType),
		StartTime:         b.StartTime.Format(time.RFC3339),
		EndTime:           b.EndTime.Format(time.RFC3339),
		ExpectedAttendees: b.ExpectedAttendees,
		Status:            string(b.Status),
		BatchID:           b.BatchID,
		AdminNote:         b.AdminNote,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", false
	}
	return s, true
}
