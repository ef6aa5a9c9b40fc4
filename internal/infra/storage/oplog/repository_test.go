package oplog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestAppend(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mode := domain.ModeAuto
	windowEnd := now.Add(8 * time.Hour)

	mock.ExpectQuery(`INSERT INTO hourly_oplog`).
		WithArgs(int64(1), "WINDOW_STARTED", int64(42), "AUTO", now, windowEnd, nil, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	event, err := repo.Append(context.Background(), domain.OpEvent{
		HotelID:     1,
		Kind:        domain.EventWindowStarted,
		ActorUserID: 42,
		Mode:        &mode,
		WindowStart: &now,
		WindowEnd:   &windowEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, now, event.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO hourly_oplog`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Append(context.Background(), domain.OpEvent{
		HotelID:     1,
		Kind:        domain.EventWindowStopped,
		ActorUserID: 42,
	})

	require.ErrorIs(t, err, ErrExecQuery)
}

func TestListByHotel(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "hotel_id", "kind", "actor_user_id", "mode",
		"window_start", "window_end", "booking_id", "details", "created_at",
	}).
		AddRow(int64(2), int64(1), "BOOKING_CREATED", int64(42), nil, nil, nil, int64(10), "type=HOURLY", now).
		AddRow(int64(1), int64(1), "WINDOW_STARTED", int64(42), "AUTO", now, now.Add(8*time.Hour), nil, "", now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT .+ FROM hourly_oplog WHERE hotel_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 50`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	events, err := repo.ListByHotel(context.Background(), 1, 0)

	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, domain.EventBookingCreated, events[0].Kind)
	require.NotNil(t, events[0].BookingID)
	assert.Equal(t, int64(10), *events[0].BookingID)
	assert.Nil(t, events[0].Mode)

	assert.Equal(t, domain.EventWindowStarted, events[1].Kind)
	require.NotNil(t, events[1].Mode)
	assert.Equal(t, domain.ModeAuto, *events[1].Mode)
	require.NotNil(t, events[1].WindowStart)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByHotel_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM hourly_oplog`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "hotel_id", "kind", "actor_user_id", "mode",
			"window_start", "window_end", "booking_id", "details", "created_at",
		}))

	events, err := repo.ListByHotel(context.Background(), 5, 20)

	require.NoError(t, err)
	assert.Empty(t, events)
}
