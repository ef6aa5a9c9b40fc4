package propertyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

// Client клиент для работы с PropertyService
//
// Все запросы идут с заголовком Authorization: Bearer <token>, токен берётся
// из внедрённого TokenProvider на каждый запрос
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента PropertyService
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		metrics: metrics,
		log:     log,
	}
}

// GetHotel получает отель по ID
func (c *Client) GetHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	var resp Hotel
	path := fmt.Sprintf("/property/hotels/%d/", hotelID)
	if err := c.do(ctx, "get_hotel", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}
	hotel := resp.ToDomain()
	return &hotel, nil
}

// GetHourlyOperations получает текущий статус почасового окна отеля
func (c *Client) GetHourlyOperations(ctx context.Context, hotelID int64) (domain.HourlyWindow, error) {
	var resp HourlyOperationsResponse
	path := fmt.Sprintf("/property/hotels/%d/hourly-operations/", hotelID)
	if err := c.do(ctx, "get_hourly_operations", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return domain.HourlyWindow{}, err
	}
	return resp.ToDomain()
}

// StartHourlyOperations открывает почасовое окно
// Для CUSTOM режима границы обязаны быть заданы (валидируется до вызова)
func (c *Client) StartHourlyOperations(ctx context.Context, hotelID int64, mode domain.HourlyMode, bounds *domain.TimeRange) (domain.HourlyWindow, error) {
	req := StartHourlyRequest{Mode: string(mode)}
	if bounds != nil {
		req.StartDatetime = &bounds.Start
		req.EndDatetime = &bounds.End
	}

	var resp StartHourlyResponse
	path := fmt.Sprintf("/property/hotels/%d/hourly-operations/", hotelID)
	if err := c.do(ctx, "start_hourly_operations", http.MethodPost, path, req, &resp, ErrHotelNotFound); err != nil {
		return domain.HourlyWindow{}, err
	}
	return resp.ToDomain()
}

// StopHourlyOperations закрывает почасовое окно
// Семантика тела ответа не используется, важен только статус-код
func (c *Client) StopHourlyOperations(ctx context.Context, hotelID int64) error {
	path := fmt.Sprintf("/property/hotels/%d/hourly-operations/", hotelID)
	return c.do(ctx, "stop_hourly_operations", http.MethodDelete, path, nil, nil, ErrHotelNotFound)
}

// GetHourlySlots получает снимок таймлайнов занятости комнат
func (c *Client) GetHourlySlots(ctx context.Context, hotelID int64) ([]domain.RoomTimeline, error) {
	var resp HourlySlotsResponse
	path := fmt.Sprintf("/property/hotels/%d/hourly-slots/", hotelID)
	if err := c.do(ctx, "get_hourly_slots", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}
	return resp.ToDomain()
}

// ListBookings получает список бронирований отеля
func (c *Client) ListBookings(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	var resp []Booking
	path := fmt.Sprintf("/property/hotels/%d/bookings/", hotelID)
	if err := c.do(ctx, "list_bookings", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(resp))
	for i := range resp {
		bookings[i] = resp[i].ToDomain()
	}
	return bookings, nil
}

// ListRoomTypes получает категории номеров отеля
func (c *Client) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	var resp []RoomType
	path := fmt.Sprintf("/property/hotels/%d/room-types/", hotelID)
	if err := c.do(ctx, "list_room_types", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}

	types := make([]domain.RoomType, len(resp))
	for i := range resp {
		types[i] = resp[i].ToDomain()
	}
	return types, nil
}

// ListRooms получает физические комнаты отеля
func (c *Client) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var resp []Room
	path := fmt.Sprintf("/property/hotels/%d/rooms/", hotelID)
	if err := c.do(ctx, "list_rooms", http.MethodGet, path, nil, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, len(resp))
	for i := range resp {
		rooms[i] = resp[i].ToDomain()
	}
	return rooms, nil
}

// CreateBooking создает бронирование
// HTTP 409 (нет свободных комнат) маппится в ErrConflict
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var resp Booking
	if err := c.do(ctx, "create_booking", http.MethodPost, "/property/bookings/create/", req, &resp, ErrHotelNotFound); err != nil {
		return nil, err
	}
	booking := resp.ToDomain()
	return &booking, nil
}

// BookingAction выполняет действие над бронированием (CHECK_IN / CHECK_OUT / CANCEL)
func (c *Client) BookingAction(ctx context.Context, bookingID int64, action domain.BookingAction, roomID *int64) error {
	req := BookingActionRequest{
		Action: string(action),
		RoomID: roomID,
	}
	path := fmt.Sprintf("/property/bookings/%d/action/", bookingID)
	return c.do(ctx, "booking_action", http.MethodPost, path, req, nil, ErrBookingNotFound)
}

// GetAvailableRooms получает комнаты, доступные для заселения по бронированию
func (c *Client) GetAvailableRooms(ctx context.Context, bookingID int64) ([]domain.Room, error) {
	var resp []Room
	path := fmt.Sprintf("/property/bookings/%d/available-rooms/", bookingID)
	if err := c.do(ctx, "get_available_rooms", http.MethodGet, path, nil, &resp, ErrBookingNotFound); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, len(resp))
	for i := range resp {
		rooms[i] = resp[i].ToDomain()
	}
	return rooms, nil
}

// do выполняет запрос к PropertyService: прикладывает bearer-токен, маппит
// статус-коды в sentinel-ошибки и декодирует тело в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}, notFound error) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("%w: failed to obtain auth token: %v", ErrInternal, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordMetric(operation, "transport_error")
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.recordMetric(operation, strconv.Itoa(resp.StatusCode))

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return notFound
	case http.StatusConflict:
		msg := readErrorMessage(resp.Body)
		c.log.Warn("PropertyService %s: conflict: %s", operation, msg)
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	default:
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) recordMetric(operation, status string) {
	if c.metrics != nil {
		c.metrics.IncUpstreamRequest(operation, status)
	}
}

// readErrorMessage пытается вытащить message из тела ошибки
func readErrorMessage(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil || errResp.Message == "" {
		return "no details"
	}
	return errResp.Message
}
