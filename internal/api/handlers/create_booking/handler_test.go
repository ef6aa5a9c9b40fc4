package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
	"github.com/hourlystay/HS-OpsService/internal/api/middleware"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockService struct {
	resp *models.BookingResponse
	err  error

	gotReq *models.CreateBookingRequest
}

func (m *mockService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	m.gotReq = req
	return m.resp, m.err
}

func doRequest(t *testing.T, svc BookingService, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_NoRoomsAvailable(t *testing.T) {
	svc := &mockService{err: bookings.ErrNoRoomsAvailable}

	rec := doRequest(t, svc, `{
		"hotel_id": 1,
		"room_type_id": 3,
		"booking_type": "HOURLY",
		"guest_name": "Walk-in guest",
		"check_in": "2026-09-01T14:00:00Z",
		"duration_hours": 3
	}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No rooms available!", resp.Message)
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{resp: &models.BookingResponse{ID: 10, BookingReference: "HS-0010"}}

	rec := doRequest(t, svc, `{
		"hotel_id": 1,
		"room_type_id": 3,
		"booking_type": "HOURLY",
		"guest_name": "Walk-in guest",
		"check_in": "2026-09-01T14:00:00Z",
		"duration_hours": 3
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, int64(42), svc.gotReq.ActorUserID, "actor must come from the X-User-ID header")

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "HS-0010", resp.BookingReference)
}

func TestHandle_MissingUserID(t *testing.T) {
	svc := &mockService{}

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.gotReq, "service must not be called without authentication")
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockService{}

	rec := doRequest(t, svc, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotReq)
}
