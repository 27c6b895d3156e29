package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return ts
}

// Интервалы полуоткрытые: [start, end). Бронь, заканчивающаяся в 18:00,
// не конфликтует с бронью, начинающейся в 18:00.
func TestInterval_Overlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        Interval
		b        Interval
		overlaps bool
	}{
		{
			name: "Partial overlap",
			a: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T18:00:00+08:00"),
			},
			b: Interval{
				Start: mustTime(t, "2026-10-10T17:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T19:00:00+08:00"),
			},
			overlaps: true,
		},
		{
			name: "One interval inside another",
			a: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T22:00:00+08:00"),
			},
			b: Interval{
				Start: mustTime(t, "2026-10-10T18:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T19:00:00+08:00"),
			},
			overlaps: true,
		},
		{
			name: "Identical intervals",
			a: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T18:00:00+08:00"),
			},
			b: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T18:00:00+08:00"),
			},
			overlaps: true,
		},
		{
			name: "Back to back intervals do not overlap",
			a: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T18:00:00+08:00"),
			},
			b: Interval{
				Start: mustTime(t, "2026-10-10T18:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T20:00:00+08:00"),
			},
			overlaps: false,
		},
		{
			name: "Disjoint intervals",
			a: Interval{
				Start: mustTime(t, "2026-10-10T16:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T17:00:00+08:00"),
			},
			b: Interval{
				Start: mustTime(t, "2026-10-10T19:00:00+08:00"),
				End:   mustTime(t, "2026-10-10T20:00:00+08:00"),
			},
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Пересечение симметрично
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	start := mustTime(t, "2026-10-10T16:00:00+08:00")

	assert.True(t, Interval{Start: start, End: start.Add(time.Hour)}.IsValid())
	assert.False(t, Interval{Start: start, End: start}.IsValid())
	assert.False(t, Interval{Start: start, End: start.Add(-time.Hour)}.IsValid())
}

func TestBooking_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"Pending to approved", StatusPending, StatusApproved, true},
		{"Pending to rejected", StatusPending, StatusRejected, true},
		{"Approved to rejected", StatusApproved, StatusRejected, false},
		{"Rejected to approved", StatusRejected, StatusApproved, false},
		{"Approved to pending", StatusApproved, StatusPending, false},
		{"Pending to pending", StatusPending, StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking := &Booking{Status: tc.from}
			assert.Equal(t, tc.allowed, booking.CanTransitionTo(tc.to))
		})
	}
}

// Отклоненные брони не занимают площадку
func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusApproved}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
}
