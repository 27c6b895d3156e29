package create_booking

import (
	"time"

	"github.com/campusbook/VenueBookingService/internal/domain"
	createBooking "github.com/campusbook/VenueBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClubID            int64   `json:"clubId"`
	VenueIDs          []int64 `json:"venueIds"`
	EventType         string  `json:"eventType"`
	EventName         string  `json:"eventName"`
	StartTime         string  `json:"startTime"` // RFC 3339
	EndTime           string  `json:"endTime"`   // RFC 3339
	ExpectedAttendees int     `json:"expectedAttendees"`
}

// BookingResponse HTTP response model (одна строка батча)
type BookingResponse struct {
	ID                int64   `json:"id"`
	ClubID            int64   `json:"clubId"`
	VenueID           int64   `json:"venueId"`
	UserID            int64   `json:"userId"`
	EventName         string  `json:"eventName"`
	EventType         string  `json:"eventType"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	ExpectedAttendees int     `json:"expectedAttendees"`
	Status            string  `json:"status"`
	BatchID           string  `json:"batchId"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BatchID  string            `json:"batchId"`
	Bookings []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClubID:            r.ClubID,
		UserID:            userID,
		VenueIDs:          r.VenueIDs,
		EventType:         domain.EventType(r.EventType),
		EventName:         r.EventName,
		StartTime:         startTime,
		EndTime:           endTime,
		ExpectedAttendees: r.ExpectedAttendees,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		BatchID:  resp.BatchID,
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:                b.ID,
			ClubID:            b.ClubID,
			VenueID:           b.VenueID,
			UserID:            b.UserID,
			EventName:         b.EventName,
			EventType:         b.EventType,
			StartTime:         b.StartTime.Format(time.RFC3339),
			EndTime:           b.EndTime.Format(time.RFC3339),
			ExpectedAttendees: b.ExpectedAttendees,
			Status:            b.Status,
			BatchID:           b.BatchID,
			CreatedAt:         b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
