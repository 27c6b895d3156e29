package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/VenueBookingService/internal/api/middleware"
	createBooking "github.com/campusbook/VenueBookingService/internal/usecase/create_booking"
)

// Mock структуры

type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		ClubID:            1,
		VenueIDs:          []int64{1, 2},
		EventType:         "co_curricular",
		EventName:         "Annual Showcase",
		StartTime:         "2026-10-10T18:00:00+08:00",
		EndTime:           "2026-10-10T20:00:00+08:00",
		ExpectedAttendees: 50,
	}
}

// Запрос проходит через Auth middleware, как в production роутере
func doRequest(t *testing.T, handler *Handler, body interface{}, userID string) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}

	w := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(w, req)
	return w
}

// ============================ Тесты ============================

func TestHandle_Created(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockUseCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.ClubID == 1 && req.UserID == 100 && len(req.VenueIDs) == 2
	})).Return(&createBooking.Response{
		BatchID: "batch-uuid",
		Bookings: []createBooking.CreatedBooking{
			{ID: 10, VenueID: 1, Status: "approved", BatchID: "batch-uuid", CreatedAt: now, UpdatedAt: now},
			{ID: 11, VenueID: 2, Status: "pending", BatchID: "batch-uuid", CreatedAt: now, UpdatedAt: now},
		},
	}, nil).Once()

	w := doRequest(t, handler, validBody(), "100")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "batch-uuid", resp.BatchID)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "approved", resp.Bookings[0].Status)
	assert.Equal(t, "pending", resp.Bookings[1].Status)

	mockUseCase.AssertExpectations(t)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	w := doRequest(t, handler, validBody(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertNotCalled(t, "Execute")
}

func TestHandle_InvalidTimestamps(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	body := validBody()
	body.StartTime = "10/10/2026 18:00"

	w := doRequest(t, handler, body, "100")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC 3339")
	mockUseCase.AssertNotCalled(t, "Execute")
}

func TestHandle_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"Validation error", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"Advance notice", createBooking.ErrAdvanceNotice, http.StatusBadRequest},
		{"Operating hours", createBooking.ErrOperatingHours, http.StatusBadRequest},
		{"Capacity exceeded", createBooking.ErrCapacityExceeded, http.StatusBadRequest},
		{"Venue not found", createBooking.ErrVenueNotFound, http.StatusNotFound},
		{"Club not found", createBooking.ErrClubNotFound, http.StatusNotFound},
		{"Conflict", createBooking.ErrConflict, http.StatusConflict},
		{"Storage unavailable", createBooking.ErrStorageUnavailable, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUseCase := &MockCreateBookingUseCase{}
			handler := NewHandler(mockUseCase, noopLogger{})

			mockUseCase.On("Execute", mock.Anything, mock.Anything).
				Return(nil, tc.useCaseErr).Once()

			w := doRequest(t, handler, validBody(), "100")

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestHandle_ConflictResponseCarriesMessage(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	mockUseCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Conflict: The following venues are already booked during this time: Auditorium",
			createBooking.ErrConflict)).Once()

	w := doRequest(t, handler, validBody(), "100")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Auditorium")
}

func TestHandle_PartialFailureReported(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	mockUseCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &createBooking.PartialFailureError{
			BatchID:         "batch-uuid",
			FailedVenueID:   2,
			FailedVenueName: "Auditorium",
		}).Once()

	w := doRequest(t, handler, validBody(), "100")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Auditorium")
}
