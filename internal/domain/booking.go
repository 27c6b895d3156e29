package domain

import "time"

// BookingStatus represents the status of a venue booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// EventType represents the kind of event a club is booking venues for
type EventType string

const (
	EventClosedClub   EventType = "closed_club"
	EventOpenForAll   EventType = "open_all"
	EventCoCurricular EventType = "co_curricular"
)

// Booking represents a single venue reservation.
// A multi-venue request expands into one Booking row per venue,
// all rows sharing the same BatchID.
type Booking struct {
	ID                int64
	ClubID            int64
	VenueID           int64
	UserID            int64
	EventName         string
	EventType         EventType
	StartTime         time.Time
	EndTime           time.Time
	ExpectedAttendees int
	Status            BookingStatus
	BatchID           string
	AdminNote         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booking's half-open time interval [start, end)
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking still holds its venue slot.
// Rejected bookings no longer participate in conflict checks.
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected
}

// IsPending returns true if the booking is awaiting admin review
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// CanTransitionTo returns true if the booking may change to the given status.
// Only pending bookings can be approved or rejected; approved and rejected
// are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// IsValidStatus returns true if the value names a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsValidEventType returns true if the value names a known event type
func IsValidEventType(t EventType) bool {
	switch t {
	case EventClosedClub, EventOpenForAll, EventCoCurricular:
		return true
	default:
		return false
	}
}

// OverlapFilter фильтр для поиска бронирований, пересекающихся с интервалом
// Используется Conflict Resolver-ом; статус rejected исключается всегда
type OverlapFilter struct {
	VenueIDs []int64
	Start    time.Time
	End      time.Time
}

// ClubBookingsFilter фильтр для получения бронирований клуба
type ClubBookingsFilter struct {
	ClubID int64
	Status *BookingStatus // Фильтр по статусу (опционально)
}
