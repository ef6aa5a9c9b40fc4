package propertyservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, NewStaticTokenProvider("test-token"), nil, nopLogger{})
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "name": "Test", "is_hourly_enabled": true, "checkout_time": "11:00"}`))
	})

	hotel, err := client.GetHotel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, int64(1), hotel.ID)
	assert.True(t, hotel.IsHourlyEnabled)
}

func TestClient_NotFoundMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetHotel(context.Background(), 99)
	require.ErrorIs(t, err, ErrHotelNotFound)

	err = client.BookingAction(context.Background(), 99, domain.ActionCancel, nil)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestClient_UnauthorizedMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.GetHotel(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ConflictCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code": 409, "message": "no rooms available for the requested slot"}`))
	})

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{HotelID: 1})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "no rooms available for the requested slot")
}

func TestClient_GetHourlyOperations_ActiveRequiresWindow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ACTIVE"}`))
	})

	_, err := client.GetHourlyOperations(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetHourlyOperations_Inactive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "INACTIVE"}`))
	})

	window, err := client.GetHourlyOperations(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, window.IsActive())
}

func TestClient_GetHourlySlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rooms": [{
				"id": 5,
				"number": "101",
				"type": "Standard",
				"status": "CLEAN",
				"slots": [
					{"start": "2026-09-01T10:00:00Z", "end": "2026-09-01T11:00:00Z", "type": "BOOKED"},
					{"start": "2026-09-01T11:00:00Z", "end": "2026-09-01T14:00:00Z", "type": "FREE"}
				]
			}]
		}`))
	})

	rooms, err := client.GetHourlySlots(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	require.Len(t, rooms[0].Segments, 2)
	assert.Equal(t, domain.SegmentBooked, rooms[0].Segments[0].Kind)
	assert.Equal(t, domain.SegmentFree, rooms[0].Segments[1].Kind)
}

func TestClient_GetHourlySlots_RejectsOverlap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rooms": [{
				"id": 5,
				"number": "101",
				"type": "Standard",
				"status": "CLEAN",
				"slots": [
					{"start": "2026-09-01T10:00:00Z", "end": "2026-09-01T12:00:00Z", "type": "BOOKED"},
					{"start": "2026-09-01T11:00:00Z", "end": "2026-09-01T14:00:00Z", "type": "FREE"}
				]
			}]
		}`))
	})

	_, err := client.GetHourlySlots(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFileTokenProvider_ReadsAndCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("first-token\n"), 0o600))

	provider := NewFileTokenProvider(path, time.Hour)

	token, err := provider.Token()
	require.NoError(t, err)
	assert.Equal(t, "first-token", token)

	// Файл пропал, но закэшированный токен продолжает отдаваться
	require.NoError(t, os.Remove(path))

	token, err = provider.Token()
	require.NoError(t, err)
	assert.Equal(t, "first-token", token)
}
