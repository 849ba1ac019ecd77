package reservation

import (
	"context"
	"errors"
	"testing"

	"roomdesk/internal/domain"
	"roomdesk/internal/modules/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByRoomAndDate(ctx context.Context, roomNumber, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, roomNumber, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) Book(ctx context.Context, roomID string, snap domain.BookingSnapshot) bool {
	args := m.Called(ctx, roomID, snap)
	return args.Bool(0)
}

func (m *MockRoomService) CheckIn(ctx context.Context, roomID string) bool {
	args := m.Called(ctx, roomID)
	return args.Bool(0)
}

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Find(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func studentAccount() *domain.Account {
	return &domain.Account{
		ID:     "ACC-1",
		Type:   domain.AccountStudent,
		Email:  "aruzhan.student@roomdesk.edu",
		Status: domain.AccountActive,
	}
}

func enabledRoom() *domain.Room {
	return &domain.Room{
		ID:       "R1",
		Building: "Main Hall",
		Number:   "101",
		Capacity: 8,
		Status:   domain.RoomEnabled,
		Context:  domain.RoomContext{Condition: domain.ConditionAvailable},
	}
}

func newTestService(bookings *MockBookingRepository, rooms *MockRoomService, accounts *MockAccountStore) *Service {
	return NewService(bookings, rooms, accounts, pricing.NewFactory(), nil, nil, nil)
}

func TestService_CalculateHourlyRate(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomService), new(MockAccountStore))

	assert.Equal(t, 20.0, service.CalculateHourlyRate(studentAccount()))
	assert.Equal(t, 30.0, service.CalculateHourlyRate(&domain.Account{Type: domain.AccountFaculty}))
	assert.Equal(t, 20.0, service.CalculateHourlyRate(nil))
}

func TestService_CreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Save", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.AccountID == "ACC-1" && b.Hours == 2 && b.TotalCost == 40 &&
			b.Status == domain.BookingReserved && b.ID != ""
	})).Return(nil)

	service := newTestService(bookings, new(MockRoomService), new(MockAccountStore))

	b, err := service.CreateBooking(context.Background(), studentAccount(), 2, 20)

	assert.NoError(t, err)
	assert.Equal(t, 40.0, b.TotalCost)
	// id follows the "B" + 8 hex chars shape
	assert.Len(t, b.ID, 9)
	assert.Equal(t, byte('B'), b.ID[0])
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_Validation(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomService), new(MockAccountStore))

	_, err := service.CreateBooking(context.Background(), nil, 2, 20)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = service.CreateBooking(context.Background(), studentAccount(), 0, 20)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = service.CreateBooking(context.Background(), studentAccount(), 2, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateRoomBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomService)

	rooms.On("GetByNumber", mock.Anything, "101").Return(enabledRoom(), nil)
	bookings.On("FindByRoomAndDate", mock.Anything, "101", "2026-09-01").Return([]domain.Booking{}, nil)
	bookings.On("Save", mock.Anything, mock.Anything).Return(nil)
	rooms.On("Book", mock.Anything, "R1", mock.MatchedBy(func(snap domain.BookingSnapshot) bool {
		return snap.UserID == "ACC-1" && snap.StartTime == "10:00" && snap.EndTime == "12:00"
	})).Return(true)

	service := newTestService(bookings, rooms, new(MockAccountStore))

	b, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "101", "2026-09-01", "10:00", "12:00")

	assert.NoError(t, err)
	assert.Equal(t, "R1", b.RoomID)
	assert.Equal(t, "Main Hall", b.Building)
	assert.Equal(t, 40.0, b.TotalCost)
	rooms.AssertExpectations(t)
}

func TestService_CreateRoomBooking_RoomNumberRequired(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomService), new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "  ", "2026-09-01", "10:00", "12:00")
	assert.ErrorIs(t, err, ErrRoomNumberRequired)
}

func TestService_CreateRoomBooking_RoomNotFound(t *testing.T) {
	rooms := new(MockRoomService)
	rooms.On("GetByNumber", mock.Anything, "999").Return(nil, errors.New("not found"))

	service := newTestService(new(MockBookingRepository), rooms, new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "999", "2026-09-01", "10:00", "12:00")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_CreateRoomBooking_RoomDisabled(t *testing.T) {
	rooms := new(MockRoomService)
	room := enabledRoom()
	room.Status = domain.RoomDisabled
	rooms.On("GetByNumber", mock.Anything, "101").Return(room, nil)

	service := newTestService(new(MockBookingRepository), rooms, new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "101", "2026-09-01", "10:00", "12:00")
	assert.ErrorIs(t, err, ErrRoomDisabled)
}

func TestService_CreateRoomBooking_TimeConflict(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomService)

	rooms.On("GetByNumber", mock.Anything, "101").Return(enabledRoom(), nil)
	existing := domain.Booking{
		ID:         "B00000009",
		RoomNumber: "101",
		Date:       "2026-09-01",
		StartTime:  "11:00",
		EndTime:    "13:00",
		Status:     domain.BookingReserved,
	}
	bookings.On("FindByRoomAndDate", mock.Anything, "101", "2026-09-01").Return([]domain.Booking{existing}, nil)

	service := newTestService(bookings, rooms, new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "101", "2026-09-01", "10:00", "12:00")
	assert.ErrorIs(t, err, ErrTimeConflict)
	bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_CreateRoomBooking_ConflictScanFaultBlocksCreate(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomService)

	rooms.On("GetByNumber", mock.Anything, "101").Return(enabledRoom(), nil)
	bookings.On("FindByRoomAndDate", mock.Anything, "101", "2026-09-01").Return(nil, errors.New("db down"))

	service := newTestService(bookings, rooms, new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "101", "2026-09-01", "10:00", "12:00")
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestService_CreateRoomBooking_RoomReserveFailureCompensates(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomService)

	rooms.On("GetByNumber", mock.Anything, "101").Return(enabledRoom(), nil)
	bookings.On("FindByRoomAndDate", mock.Anything, "101", "2026-09-01").Return([]domain.Booking{}, nil)
	bookings.On("Save", mock.Anything, mock.Anything).Return(nil)
	rooms.On("Book", mock.Anything, "R1", mock.Anything).Return(false)
	bookings.On("Delete", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(bookings, rooms, new(MockAccountStore))

	_, err := service.CreateRoomBooking(context.Background(), studentAccount(), 2, 20, "101", "2026-09-01", "10:00", "12:00")

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	bookings.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_FindBooking_CachesRepositoryHit(t *testing.T) {
	bookings := new(MockBookingRepository)
	b := &domain.Booking{ID: "B00000001", AccountID: "ACC-1", Status: domain.BookingReserved}
	bookings.On("FindByID", mock.Anything, "B00000001").Return(b, nil).Once()

	service := newTestService(bookings, new(MockRoomService), new(MockAccountStore))

	assert.Equal(t, b, service.FindBooking(context.Background(), "B00000001"))
	// second lookup is served from the cache
	assert.Equal(t, b, service.FindBooking(context.Background(), "B00000001"))
	bookings.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestService_FindBooking_FaultDowngradedToMiss(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, "B00000001").Return(nil, errors.New("db down"))

	service := newTestService(bookings, new(MockRoomService), new(MockAccountStore))

	assert.Nil(t, service.FindBooking(context.Background(), "B00000001"))
}

func TestService_CheckIn_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomService)
	accounts := new(MockAccountStore)

	b := &domain.Booking{
		ID:         "B00000001",
		AccountID:  "ACC-1",
		RoomNumber: "101",
		Status:     domain.BookingReserved,
	}
	bookings.On("FindByID", mock.Anything, "B00000001").Return(b, nil)
	accounts.On("Find", mock.Anything, "ACC-1").Return(studentAccount(), nil)
	bookings.On("Update", mock.Anything, mock.MatchedBy(func(updated *domain.Booking) bool {
		return updated.Status == domain.BookingInUse
	})).Return(nil)
	rooms.On("GetByNumber", mock.Anything, "101").Return(enabledRoom(), nil)
	rooms.On("CheckIn", mock.Anything, "R1").Return(true)

	service := newTestService(bookings, rooms, accounts)

	// email match is case-insensitive
	assert.True(t, service.CheckIn(context.Background(), "B00000001", "ARUZHAN.STUDENT@ROOMDESK.EDU"))
	rooms.AssertCalled(t, "CheckIn", mock.Anything, "R1")
}

func TestService_CheckIn_WrongEmail(t *testing.T) {
	bookings := new(MockBookingRepository)
	accounts := new(MockAccountStore)

	b := &domain.Booking{ID: "B00000001", AccountID: "ACC-1", Status: domain.BookingReserved}
	bookings.On("FindByID", mock.Anything, "B00000001").Return(b, nil)
	accounts.On("Find", mock.Anything, "ACC-1").Return(studentAccount(), nil)

	service := newTestService(bookings, new(MockRoomService), accounts)

	assert.False(t, service.CheckIn(context.Background(), "B00000001", "someone.else@roomdesk.edu"))
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_CheckIn_RequiresReservedStatus(t *testing.T) {
	bookings := new(MockBookingRepository)
	accounts := new(MockAccountStore)

	b := &domain.Booking{ID: "B00000001", AccountID: "ACC-1", Status: domain.BookingInUse}
	bookings.On("FindByID", mock.Anything, "B00000001").Return(b, nil)
	accounts.On("Find", mock.Anything, "ACC-1").Return(studentAccount(), nil)

	service := newTestService(bookings, new(MockRoomService), accounts)

	assert.False(t, service.CheckIn(context.Background(), "B00000001", "aruzhan.student@roomdesk.edu"))
}

func TestService_DisplayStatus_RoomConditionWins(t *testing.T) {
	rooms := new(MockRoomService)

	b := &domain.Booking{ID: "B00000001", RoomNumber: "101", Status: domain.BookingReserved}
	room := enabledRoom()
	room.Context.Condition = domain.ConditionNoShow
	room.Context.Snapshot = domain.BookingSnapshot{BookingID: "B00000001"}
	rooms.On("GetByNumber", mock.Anything, "101").Return(room, nil)

	service := newTestService(new(MockBookingRepository), rooms, new(MockAccountStore))

	assert.Equal(t, domain.BookingNoShow, service.DisplayStatus(context.Background(), b))
}

func TestService_DisplayStatus_FallsBackToBookingStatus(t *testing.T) {
	rooms := new(MockRoomService)

	b := &domain.Booking{ID: "B00000001", RoomNumber: "101", Status: domain.BookingCompleted}
	room := enabledRoom()
	room.Context.Snapshot = domain.BookingSnapshot{BookingID: "BSOMEONE1"}
	rooms.On("GetByNumber", mock.Anything, "101").Return(room, nil)

	service := newTestService(new(MockBookingRepository), rooms, new(MockAccountStore))

	// room occupied by a different booking
	assert.Equal(t, domain.BookingCompleted, service.DisplayStatus(context.Background(), b))

	// ledger-only booking has no room to consult
	ledger := &domain.Booking{ID: "B00000002", Status: domain.BookingReserved}
	assert.Equal(t, domain.BookingReserved, service.DisplayStatus(context.Background(), ledger))
}

func TestService_ObserverKeepsCacheCoherent(t *testing.T) {
	bookings := new(MockBookingRepository)
	service := newTestService(bookings, new(MockRoomService), new(MockAccountStore))

	b := &domain.Booking{ID: "B00000001", AccountID: "ACC-1", Status: domain.BookingReserved}
	service.BookingCreated(b)

	// cache hit: no repository call expected
	assert.Equal(t, b, service.FindBooking(context.Background(), "B00000001"))
	bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

	service.BookingCancelled(b)
	bookings.On("FindByID", mock.Anything, "B00000001").Return(nil, nil)
	assert.Nil(t, service.FindBooking(context.Background(), "B00000001"))
}
