package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	propertyClient "github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
	"github.com/hourlystay/HS-OpsService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockClient struct {
	bookings  []domain.Booking
	listErr   error
	roomTypes []domain.RoomType
	typesErr  error
	rooms     []domain.Room
	roomsErr  error

	created   *domain.Booking
	createErr error
	actionErr error

	createCalls int
	actionCalls int
	typesCalls  int
	roomsCalls  int

	lastAction domain.BookingAction
	lastRoomID *int64
}

func (m *mockClient) ListBookings(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	return m.bookings, m.listErr
}

func (m *mockClient) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	m.typesCalls++
	return m.roomTypes, m.typesErr
}

func (m *mockClient) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	m.roomsCalls++
	return m.rooms, m.roomsErr
}

func (m *mockClient) CreateBooking(ctx context.Context, req propertyClient.CreateBookingRequest) (*domain.Booking, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockClient) BookingAction(ctx context.Context, bookingID int64, action domain.BookingAction, roomID *int64) error {
	m.actionCalls++
	m.lastAction = action
	m.lastRoomID = roomID
	return m.actionErr
}

func (m *mockClient) GetAvailableRooms(ctx context.Context, bookingID int64) ([]domain.Room, error) {
	return m.rooms, m.roomsErr
}

type mockRefresher struct {
	calls   int
	lastID  int64
	failErr error
}

func (m *mockRefresher) RefreshSnapshot(ctx context.Context, hotelID int64) error {
	m.calls++
	m.lastID = hotelID
	return m.failErr
}

func newTestService(client *mockClient, refresher SnapshotRefresher) *Service {
	return NewService(client, refresher, nil, time.Minute, nopLogger{})
}

func validHourlyRequest() *models.CreateBookingRequest {
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return &models.CreateBookingRequest{
		HotelID:       1,
		ActorUserID:   42,
		RoomTypeID:    3,
		GuestName:     "Walk-in guest",
		BookingType:   domain.BookingHourly,
		CheckIn:       &checkIn,
		DurationHours: ptr.Ptr(3),
	}
}

func TestCreate_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateBookingRequest)
	}{
		{
			name:   "missing room category",
			mutate: func(req *models.CreateBookingRequest) { req.RoomTypeID = 0 },
		},
		{
			name:   "missing duration for hourly",
			mutate: func(req *models.CreateBookingRequest) { req.DurationHours = nil },
		},
		{
			name:   "duration out of range",
			mutate: func(req *models.CreateBookingRequest) { req.DurationHours = ptr.Ptr(25) },
		},
		{
			name:   "missing check-in",
			mutate: func(req *models.CreateBookingRequest) { req.CheckIn = nil },
		},
		{
			name: "nightly without check-out",
			mutate: func(req *models.CreateBookingRequest) {
				req.BookingType = domain.BookingNightly
				req.CheckOut = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			svc := newTestService(client, nil)

			req := validHourlyRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, client.createCalls, "validation must happen before any network call")
		})
	}
}

func TestCreate_ConflictMapsToNoRoomsAvailable(t *testing.T) {
	client := &mockClient{createErr: propertyClient.ErrConflict}
	svc := newTestService(client, nil)

	_, err := svc.Create(context.Background(), validHourlyRequest())

	require.ErrorIs(t, err, ErrNoRoomsAvailable)
	assert.NotErrorIs(t, err, ErrInternal, "conflict must be distinguishable from other failures")
}

func TestCreate_Success(t *testing.T) {
	client := &mockClient{created: &domain.Booking{
		ID:               10,
		HotelID:          1,
		BookingReference: "HS-0010",
		BookingType:      domain.BookingHourly,
		Status:           domain.StatusConfirmed,
	}}
	svc := newTestService(client, nil)

	resp, err := svc.Create(context.Background(), validHourlyRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "HS-0010", resp.BookingReference)
	assert.Equal(t, 1, client.createCalls)
}

func TestAction_CheckInRequiresRoom(t *testing.T) {
	client := &mockClient{}
	svc := newTestService(client, nil)

	err := svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID:     1,
		ActorUserID: 42,
		Action:      domain.ActionCheckIn,
	})

	require.ErrorIs(t, err, ErrRoomNotSelected)
	assert.Equal(t, 0, client.actionCalls)
}

func TestAction_UnknownActionRejected(t *testing.T) {
	client := &mockClient{}
	svc := newTestService(client, nil)

	err := svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID: 1,
		Action:  "UPGRADE",
	})

	require.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, 0, client.actionCalls)
}

func TestAction_CheckInRefreshesSnapshot(t *testing.T) {
	client := &mockClient{}
	refresher := &mockRefresher{}
	svc := newTestService(client, refresher)

	err := svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID:     1,
		ActorUserID: 42,
		Action:      domain.ActionCheckIn,
		RoomID:      ptr.Ptr(int64(5)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.actionCalls)
	require.NotNil(t, client.lastRoomID)
	assert.Equal(t, int64(5), *client.lastRoomID)
	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, int64(1), refresher.lastID)
}

func TestAction_RefreshFailureNotFatal(t *testing.T) {
	client := &mockClient{}
	refresher := &mockRefresher{failErr: errors.New("poll failed")}
	svc := newTestService(client, refresher)

	err := svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID:     1,
		ActorUserID: 42,
		Action:      domain.ActionCancel,
	})

	require.NoError(t, err, "snapshot refresh failure must not fail the action itself")
}

func TestAction_ConflictFromBackend(t *testing.T) {
	client := &mockClient{actionErr: propertyClient.ErrConflict}
	svc := newTestService(client, nil)

	err := svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID:     1,
		ActorUserID: 42,
		Action:      domain.ActionCheckOut,
	})

	require.ErrorIs(t, err, ErrConflict)
}

func TestRoomTypes_Cached(t *testing.T) {
	client := &mockClient{roomTypes: []domain.RoomType{{ID: 1, Name: "Standard"}}}
	svc := newTestService(client, nil)

	first, err := svc.RoomTypes(context.Background(), 1)
	require.NoError(t, err)

	second, err := svc.RoomTypes(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.typesCalls, "second read must come from cache")
}

func TestRooms_CacheDroppedAfterAction(t *testing.T) {
	client := &mockClient{rooms: []domain.Room{{ID: 5, RoomNumber: "101"}}}
	svc := newTestService(client, nil)

	_, err := svc.Rooms(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Rooms(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, client.roomsCalls, "second read must come from cache")

	err = svc.Action(context.Background(), 10, &models.ActionRequest{
		HotelID:     1,
		ActorUserID: 42,
		Action:      domain.ActionCheckOut,
	})
	require.NoError(t, err)

	_, err = svc.Rooms(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.roomsCalls, "выселение меняет статус уборки, кэш комнат должен сброситься")
}

func TestRoomTypes_CacheDroppedAfterCreate(t *testing.T) {
	client := &mockClient{
		roomTypes: []domain.RoomType{{ID: 3, Name: "Standard"}},
		created:   &domain.Booking{ID: 10, HotelID: 1, Status: domain.StatusConfirmed},
	}
	svc := newTestService(client, nil)

	_, err := svc.RoomTypes(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validHourlyRequest())
	require.NoError(t, err)

	_, err = svc.RoomTypes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.typesCalls, "после создания брони справочники перечитываются")
}
