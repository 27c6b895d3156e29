package domain

import "time"

// Interval represents a half-open time range [Start, End) in absolute time
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the two half-open intervals intersect.
// Strict comparison: intervals that merely touch at a boundary
// (a.End == b.Start) do not overlap, so back-to-back bookings are legal.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// IsValid returns true if the interval has positive duration
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
