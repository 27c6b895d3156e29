package check_conflict

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	checkConflict "github.com/campusbook/VenueBookingService/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP request model
// Поддерживается и как JSON body, и как query-параметры (venueIds через запятую)
type CheckConflictRequest struct {
	ClubID    int64   `json:"clubId"`
	VenueIDs  []int64 `json:"venueIds"`
	StartTime string  `json:"startTime"` // RFC 3339
	EndTime   string  `json:"endTime"`   // RFC 3339
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict bool   `json:"hasConflict"`
	Message     string `json:"message"`
}

// FromQuery заполняет запрос из query-параметров
func FromQuery(values url.Values) (*CheckConflictRequest, error) {
	req := &CheckConflictRequest{
		StartTime: values.Get("startTime"),
		EndTime:   values.Get("endTime"),
	}

	if raw := values.Get("clubId"); raw != "" {
		clubID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ClubID = clubID
	}

	if raw := values.Get("venueIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			venueID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, err
			}
			req.VenueIDs = append(req.VenueIDs, venueID)
		}
	}

	return req, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest() (*checkConflict.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkConflict.Request{
		ClubID:    r.ClubID,
		VenueIDs:  r.VenueIDs,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
