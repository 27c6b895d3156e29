package domain

// VenueCategory determines the initial status of a new booking at a venue
type VenueCategory string

const (
	// CategoryAutoApproval бронь подтверждается без ревью: создается сразу approved
	CategoryAutoApproval VenueCategory = "auto_approval"

	// CategoryNeedsApproval бронь создается pending и ждет решения администратора
	CategoryNeedsApproval VenueCategory = "needs_approval"
)

// Venue represents a bookable campus venue.
// The catalog is immutable from the booking engine's point of view.
type Venue struct {
	ID       int64
	Name     string
	Capacity int
	Category VenueCategory
}

// InitialBookingStatus returns the status a new booking at this venue
// receives at creation time
func (v *Venue) InitialBookingStatus() BookingStatus {
	if v.Category == CategoryAutoApproval {
		return StatusApproved
	}
	return StatusPending
}

// FitsAttendees returns true if the expected attendee count does not
// exceed the venue's capacity
func (v *Venue) FitsAttendees(expected int) bool {
	return expected <= v.Capacity
}

// Club represents an organizing club.
// Immutable reference data owned by the catalog.
type Club struct {
	ID            int64
	Name          string
	GroupCategory string
}
