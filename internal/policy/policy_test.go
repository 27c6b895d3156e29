package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

func campusLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	return loc
}

// ============================ Срок предварительной записи ============================

func TestValidateAdvanceNotice(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		eventType domain.EventType
		start     time.Time
		wantErr   error
	}{
		{
			name:      "Co-curricular 10 days ahead rejected",
			eventType: domain.EventCoCurricular,
			start:     now.AddDate(0, 0, 10),
			wantErr:   ErrAdvanceNotice,
		},
		{
			name:      "Co-curricular 31 days ahead accepted",
			eventType: domain.EventCoCurricular,
			start:     now.AddDate(0, 0, 31),
		},
		{
			name:      "Co-curricular exactly 30 days ahead accepted",
			eventType: domain.EventCoCurricular,
			start:     now.AddDate(0, 0, 30),
		},
		{
			name:      "Open for all 19 days ahead rejected",
			eventType: domain.EventOpenForAll,
			start:     now.AddDate(0, 0, 19),
			wantErr:   ErrAdvanceNotice,
		},
		{
			name:      "Open for all 20 days ahead accepted",
			eventType: domain.EventOpenForAll,
			start:     now.AddDate(0, 0, 20),
		},
		{
			name:      "Closed club tomorrow accepted",
			eventType: domain.EventClosedClub,
			start:     now.AddDate(0, 0, 1),
		},
		{
			// Неполные сутки округляются вверх: 2 часа считаются одним днем
			name:      "Closed club in 2 hours accepted",
			eventType: domain.EventClosedClub,
			start:     now.Add(2 * time.Hour),
		},
		{
			name:      "Closed club starting now rejected",
			eventType: domain.EventClosedClub,
			start:     now,
			wantErr:   ErrAdvanceNotice,
		},
		{
			name:      "Start in the past rejected",
			eventType: domain.EventClosedClub,
			start:     now.AddDate(0, 0, -1),
			wantErr:   ErrAdvanceNotice,
		},
		{
			name:      "Unknown event type",
			eventType: domain.EventType("birthday"),
			start:     now.AddDate(0, 0, 60),
			wantErr:   ErrUnknownEventType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAdvanceNotice(tc.eventType, tc.start, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ============================ Рабочие часы ============================

func TestValidateOperatingHours(t *testing.T) {
	loc := campusLocation(t)

	// 2026-10-10 - суббота, 2026-10-12 - понедельник
	testCases := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{
			name:  "Weekend morning at opening",
			start: time.Date(2026, 10, 10, 8, 0, 0, 0, loc),
			end:   time.Date(2026, 10, 10, 10, 0, 0, 0, loc),
		},
		{
			name:    "Weekend before opening",
			start:   time.Date(2026, 10, 10, 7, 59, 0, 0, loc),
			end:     time.Date(2026, 10, 10, 10, 0, 0, 0, loc),
			wantErr: true,
		},
		{
			name:  "Weekday evening at opening",
			start: time.Date(2026, 10, 12, 16, 0, 0, 0, loc),
			end:   time.Date(2026, 10, 12, 18, 0, 0, 0, loc),
		},
		{
			name:    "Weekday afternoon before opening",
			start:   time.Date(2026, 10, 12, 15, 0, 0, 0, loc),
			end:     time.Date(2026, 10, 12, 17, 0, 0, 0, loc),
			wantErr: true,
		},
		{
			name:  "Ends exactly at midnight",
			start: time.Date(2026, 10, 12, 22, 0, 0, 0, loc),
			end:   time.Date(2026, 10, 13, 0, 0, 0, 0, loc),
		},
		{
			name:    "Runs past midnight",
			start:   time.Date(2026, 10, 12, 22, 0, 0, 0, loc),
			end:     time.Date(2026, 10, 13, 1, 0, 0, 0, loc),
			wantErr: true,
		},
		{
			name:    "End before start",
			start:   time.Date(2026, 10, 12, 18, 0, 0, 0, loc),
			end:     time.Date(2026, 10, 12, 16, 0, 0, 0, loc),
			wantErr: true,
		},
		{
			name:    "Zero length interval",
			start:   time.Date(2026, 10, 12, 18, 0, 0, 0, loc),
			end:     time.Date(2026, 10, 12, 18, 0, 0, 0, loc),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOperatingHours(tc.start, tc.end, loc)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrOperatingHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Правила считаются в часовом поясе кампуса независимо от пояса клиента
func TestValidateOperatingHours_ClientTimezone(t *testing.T) {
	loc := campusLocation(t)

	// 09:00 UTC субботы = 17:00 в кампусе: для выходного дня это валидно
	start := time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	assert.NoError(t, ValidateOperatingHours(start, end, loc))

	// 09:00 UTC понедельника = 17:00 в кампусе: будний день, тоже валидно,
	// но 06:00 UTC = 14:00 - раньше открытия
	earlyStart := time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, ValidateOperatingHours(earlyStart, earlyStart.Add(time.Hour), loc), ErrOperatingHours)
}

// ============================ Вместимость ============================

func TestValidateCapacity(t *testing.T) {
	venue := &domain.Venue{
		ID:       1,
		Name:     "Auditorium",
		Capacity: 200,
		Category: domain.CategoryNeedsApproval,
	}

	assert.NoError(t, ValidateCapacity(venue, 0))
	assert.NoError(t, ValidateCapacity(venue, 200))
	assert.ErrorIs(t, ValidateCapacity(venue, 201), ErrCapacityExceeded)
}

// ============================ Статус новой брони ============================

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, domain.StatusApproved, InitialStatus(domain.CategoryAutoApproval))
	assert.Equal(t, domain.StatusPending, InitialStatus(domain.CategoryNeedsApproval))
}
