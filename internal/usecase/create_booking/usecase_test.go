package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/VenueBookingService/internal/domain"
	"github.com/campusbook/VenueBookingService/internal/service/conflicts"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetVenuesByIDs(ctx context.Context, ids []int64) ([]*domain.Venue, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockCatalogRepository) GetClubByID(ctx context.Context, id int64) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}

type MockConflictResolver struct {
	mock.Mock
}

func (m *MockConflictResolver) FindConflicts(ctx context.Context, venueIDs []int64, start, end time.Time) (*conflicts.Result, error) {
	args := m.Called(ctx, venueIDs, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conflicts.Result), args.Error(1)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider отдает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Фикстуры

var (
	// 2026-10-10 - суббота, бронь в 18:00 по времени кампуса
	testNow   = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, 10, 10, 18, 0, 0, 0, sgt())
	testEnd   = time.Date(2026, 10, 10, 20, 0, 0, 0, sgt())
)

func sgt() *time.Location {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	resolver ConflictResolver,
	txManager TransactionManager,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		resolver:     resolver,
		txManager:    txManager,
		timeProvider: &fixedTimeProvider{now: testNow},
		location:     sgt(),
		logger:       noopLogger{},
	}
}

func validRequest() *Request {
	return &Request{
		ClubID:            1,
		UserID:            100,
		VenueIDs:          []int64{1},
		EventType:         domain.EventCoCurricular,
		EventName:         "Annual Showcase",
		StartTime:         testStart,
		EndTime:           testEnd,
		ExpectedAttendees: 50,
	}
}

func noConflicts() *conflicts.Result {
	return &conflicts.Result{}
}

// ============================ Успешные сценарии ============================

func TestExecute_AutoApprovalVenue(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1, Name: "Chess Club"}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1}, testStart, testEnd).
		Return(noConflicts(), nil).Once()
	mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.VenueID == 1 && b.Status == domain.StatusApproved
	})).Return(&domain.Booking{
		ID:        10,
		VenueID:   1,
		Status:    domain.StatusApproved,
		BatchID:   "placeholder",
		ClubID:    1,
		UserID:    100,
		EventType: domain.EventCoCurricular,
	}, nil).Once()

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	// auto_approval площадка - бронь подтверждается сразу
	assert.Equal(t, string(domain.StatusApproved), resp.Bookings[0].Status)
	assert.NotEmpty(t, resp.BatchID)

	mockBookingRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestExecute_MixedBatchStatuses(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.VenueIDs = []int64{1, 2}

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1, 2}).
		Return([]*domain.Venue{
			{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval},
			{ID: 2, Name: "Auditorium", Capacity: 300, Category: domain.CategoryNeedsApproval},
		}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1, Name: "Chess Club"}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1, 2}, testStart, testEnd).
		Return(noConflicts(), nil).Once()

	var batchIDs []string
	mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.VenueID == 1 && b.Status == domain.StatusApproved
	})).Run(func(args mock.Arguments) {
		batchIDs = append(batchIDs, args.Get(1).(*domain.Booking).BatchID)
	}).Return(&domain.Booking{ID: 10, VenueID: 1, Status: domain.StatusApproved}, nil).Once()
	mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.VenueID == 2 && b.Status == domain.StatusPending
	})).Run(func(args mock.Arguments) {
		batchIDs = append(batchIDs, args.Get(1).(*domain.Booking).BatchID)
	}).Return(&domain.Booking{ID: 11, VenueID: 2, Status: domain.StatusPending}, nil).Once()

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	// Статус вычисляется на площадку: батч смешивает approved и pending
	assert.Equal(t, string(domain.StatusApproved), resp.Bookings[0].Status)
	assert.Equal(t, string(domain.StatusPending), resp.Bookings[1].Status)
	// Обе строки разделяют один BatchID
	require.Len(t, batchIDs, 2)
	assert.Equal(t, batchIDs[0], batchIDs[1])

	mockBookingRepo.AssertExpectations(t)
}

// ============================ Правила бронирования ============================

func TestExecute_AdvanceNoticeViolation(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockCatalogRepository{}, &MockConflictResolver{}, fakeTxManager{})

	req := validRequest()
	// co_curricular требует 30 дней, а до начала только 10
	req.StartTime = testNow.AddDate(0, 0, 10).In(sgt())
	req.EndTime = req.StartTime.Add(2 * time.Hour)

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAdvanceNotice)
}

func TestExecute_OperatingHoursViolation(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockCatalogRepository{}, &MockConflictResolver{}, fakeTxManager{})

	req := validRequest()
	// 2026-10-12 - понедельник, будние брони открываются в 16:00
	req.StartTime = time.Date(2026, 10, 12, 14, 0, 0, 0, sgt())
	req.EndTime = time.Date(2026, 10, 12, 16, 0, 0, 0, sgt())

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrOperatingHours)
}

func TestExecute_ConflictBlocksWholeBatch(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.VenueIDs = []int64{1, 2}

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1, 2}).
		Return([]*domain.Venue{
			{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval},
			{ID: 2, Name: "Auditorium", Capacity: 300, Category: domain.CategoryNeedsApproval},
		}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1, 2}, testStart, testEnd).
		Return(&conflicts.Result{
			HasConflict: true,
			VenueIDs:    []int64{2},
			Message:     "Conflict: The following venues are already booked during this time: Auditorium",
		}, nil).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Auditorium")
	// Конфликт хотя бы одной площадки отклоняет весь батч без единой вставки
	mockBookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_CapacityExceeded(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.ExpectedAttendees = 100

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1}, testStart, testEnd).
		Return(noConflicts(), nil).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	mockBookingRepo.AssertNotCalled(t, "Create")
}

// Запрос, нарушающий и конфликт, и вместимость, получает ошибку конфликта
func TestExecute_ConflictCheckedBeforeCapacity(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.ExpectedAttendees = 500

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1}, testStart, testEnd).
		Return(&conflicts.Result{HasConflict: true, VenueIDs: []int64{1}, Message: "busy"}, nil).Once()

	_, err := uc.Execute(ctx, req)

	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrCapacityExceeded)
}

// ============================ Разрешение справочников ============================

func TestExecute_UnknownVenue(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, &MockConflictResolver{}, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.VenueIDs = []int64{1, 999}

	// Справочник вернул только одну из двух запрошенных площадок
	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1, 999}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	mockBookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_UnknownClub(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, &MockConflictResolver{}, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(nil, errors.New("club not found")).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrClubNotFound)
	mockBookingRepo.AssertNotCalled(t, "Create")
}

// ============================ Валидация запроса ============================

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockCatalogRepository{}, &MockConflictResolver{}, fakeTxManager{})

	testCases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"Zero club id", func(req *Request) { req.ClubID = 0 }},
		{"No venues", func(req *Request) { req.VenueIDs = nil }},
		{"Duplicate venues", func(req *Request) { req.VenueIDs = []int64{1, 1} }},
		{"Unknown event type", func(req *Request) { req.EventType = "birthday" }},
		{"Empty event name", func(req *Request) { req.EventName = "" }},
		{"End before start", func(req *Request) { req.EndTime = req.StartTime.Add(-time.Hour) }},
		{"Negative attendees", func(req *Request) { req.ExpectedAttendees = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// ============================ Отказы хранилища ============================

func TestExecute_ConflictCheckUnavailable(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1}).
		Return([]*domain.Venue{{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval}}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1}, testStart, testEnd).
		Return(nil, conflicts.ErrStorageUnavailable).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	// Недоступность проверки конфликтов никогда не означает "конфликтов нет"
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	mockBookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_PartialFailureReportsProgress(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockCatalogRepo := &MockCatalogRepository{}
	mockResolver := &MockConflictResolver{}
	uc := newTestUseCase(mockBookingRepo, mockCatalogRepo, mockResolver, fakeTxManager{})

	ctx := context.Background()
	req := validRequest()
	req.VenueIDs = []int64{1, 2}

	mockCatalogRepo.On("GetVenuesByIDs", ctx, []int64{1, 2}).
		Return([]*domain.Venue{
			{ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval},
			{ID: 2, Name: "Auditorium", Capacity: 300, Category: domain.CategoryNeedsApproval},
		}, nil).Once()
	mockCatalogRepo.On("GetClubByID", ctx, int64(1)).
		Return(&domain.Club{ID: 1}, nil).Once()
	mockResolver.On("FindConflicts", ctx, []int64{1, 2}, testStart, testEnd).
		Return(noConflicts(), nil).Once()

	mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.VenueID == 1
	})).Return(&domain.Booking{ID: 10, VenueID: 1, Status: domain.StatusApproved}, nil).Once()
	mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.VenueID == 2
	})).Return(nil, errors.New("disk full")).Once()

	resp, err := uc.Execute(ctx, req)

	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrPartialFailure)

	var partial *PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, int64(2), partial.FailedVenueID)
	assert.Equal(t, "Auditorium", partial.FailedVenueName)
	require.Len(t, partial.Created, 1)
	assert.Equal(t, int64(1), partial.Created[0].VenueID)
	assert.NotEmpty(t, partial.BatchID)

	mockBookingRepo.AssertExpectations(t)
}

// ============================ Конкурентные запросы ============================

// memStore хранит брони в памяти и отдает пересечения как реальный репозиторий
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (s *memStore) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	row := *booking
	row.ID = s.nextID
	s.bookings = append(s.bookings, &row)
	return &row, nil
}

func (s *memStore) FindOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requested := make(map[int64]struct{}, len(filter.VenueIDs))
	for _, id := range filter.VenueIDs {
		requested[id] = struct{}{}
	}

	var result []*domain.Booking
	for _, b := range s.bookings {
		if _, ok := requested[b.VenueID]; !ok {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.StartTime.Before(filter.End) && filter.Start.Before(b.EndTime) {
			result = append(result, b)
		}
	}
	return result, nil
}

// staticCatalog неизменяемый справочник для конкурентных тестов
type staticCatalog struct {
	venues map[int64]*domain.Venue
}

func (c *staticCatalog) GetVenuesByIDs(ctx context.Context, ids []int64) ([]*domain.Venue, error) {
	result := make([]*domain.Venue, 0, len(ids))
	for _, id := range ids {
		if v, ok := c.venues[id]; ok {
			result = append(result, v)
		}
	}
	return result, nil
}

func (c *staticCatalog) GetClubByID(ctx context.Context, id int64) (*domain.Club, error) {
	return &domain.Club{ID: id, Name: "Chess Club"}, nil
}

// lockingTxManager сериализует транзакции мьютексом - модель
// сериализуемых транзакций БД для тестов без реального Postgres
type lockingTxManager struct {
	mu sync.Mutex
}

func (m *lockingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// Два одновременных запроса на одну площадку и пересекающийся интервал:
// ровно один проходит, второй получает конфликт
func TestExecute_ConcurrentRequestsSameVenue(t *testing.T) {
	store := &memStore{}
	catalog := &staticCatalog{venues: map[int64]*domain.Venue{
		1: {ID: 1, Name: "Seminar Room", Capacity: 60, Category: domain.CategoryAutoApproval},
	}}
	resolver := conflicts.NewService(store, catalog, noopLogger{})
	txManager := &lockingTxManager{}

	newUC := func() *UseCase {
		return newTestUseCase(store, catalog, resolver, txManager)
	}

	const attempts = 2
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := newUC().Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflictErrs int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConflict):
			conflictErrs++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflictErrs)

	// В хранилище ровно одна строка
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.bookings, 1)
}
