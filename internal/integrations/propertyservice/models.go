package propertyservice

import (
	"fmt"
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

// Модели ответов PropertyService. Контракт бэкенда описан явно и парсится
// на границе: дальше по сервису ходят только domain-модели.

// Hotel отель
type Hotel struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	IsHourlyEnabled bool   `json:"is_hourly_enabled"`
	CheckoutTime    string `json:"checkout_time"` // "11:00"
}

// ToDomain конвертирует модель в domain.Hotel
func (h *Hotel) ToDomain() domain.Hotel {
	return domain.Hotel{
		ID:              h.ID,
		Name:            h.Name,
		IsHourlyEnabled: h.IsHourlyEnabled,
		CheckoutTime:    h.CheckoutTime,
	}
}

// Window границы почасового окна
type Window struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// HourlyOperationsResponse ответ GET /property/hotels/{id}/hourly-operations/
type HourlyOperationsResponse struct {
	Status string  `json:"status"` // "ACTIVE" | "INACTIVE"
	Window *Window `json:"window,omitempty"`
}

// ToDomain конвертирует ответ в domain.HourlyWindow с валидацией инварианта
func (r *HourlyOperationsResponse) ToDomain() (domain.HourlyWindow, error) {
	switch domain.HourlyStatus(r.Status) {
	case domain.StatusActive:
		if r.Window == nil {
			return domain.HourlyWindow{}, fmt.Errorf("%w: ACTIVE status without window", ErrInvalidResponse)
		}
		w := domain.ActiveWindow(r.Window.StartDatetime, r.Window.EndDatetime)
		if err := w.Validate(); err != nil {
			return domain.HourlyWindow{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return w, nil
	case domain.StatusInactive:
		return domain.InactiveWindow(), nil
	default:
		return domain.HourlyWindow{}, fmt.Errorf("%w: unknown hourly status %q", ErrInvalidResponse, r.Status)
	}
}

// StartHourlyRequest тело POST /property/hotels/{id}/hourly-operations/
type StartHourlyRequest struct {
	Mode          string     `json:"mode"` // "AUTO" | "CUSTOM"
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
}

// StartHourlyResponse ответ POST /property/hotels/{id}/hourly-operations/
type StartHourlyResponse struct {
	Window Window `json:"window"`
}

// ToDomain конвертирует ответ старта в активное окно
func (r *StartHourlyResponse) ToDomain() (domain.HourlyWindow, error) {
	w := domain.ActiveWindow(r.Window.StartDatetime, r.Window.EndDatetime)
	if err := w.Validate(); err != nil {
		return domain.HourlyWindow{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return w, nil
}

// RoomSlot сегмент таймлайна одной комнаты
type RoomSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"` // "BOOKED" | "FREE"
}

// SlotRoom комната с таймлайном занятости
type SlotRoom struct {
	ID     int64      `json:"id"`
	Number string     `json:"number"`
	Type   string     `json:"type"`
	Status string     `json:"status"` // CLEAN | DIRTY | MAINTENANCE
	Slots  []RoomSlot `json:"slots"`
}

// HourlySlotsResponse ответ GET /property/hotels/{id}/hourly-slots/
type HourlySlotsResponse struct {
	Rooms []SlotRoom `json:"rooms"`
}

// ToDomain конвертирует ответ в domain-таймлайны с валидацией сегментов
func (r *HourlySlotsResponse) ToDomain() ([]domain.RoomTimeline, error) {
	rooms := make([]domain.RoomTimeline, 0, len(r.Rooms))

	for _, room := range r.Rooms {
		segments := make([]domain.Segment, 0, len(room.Slots))
		var prevEnd time.Time

		for _, slot := range room.Slots {
			kind := domain.SegmentKind(slot.Type)
			if kind != domain.SegmentBooked && kind != domain.SegmentFree {
				return nil, fmt.Errorf("%w: unknown segment kind %q for room %d", ErrInvalidResponse, slot.Type, room.ID)
			}
			if !slot.Start.Before(slot.End) {
				return nil, fmt.Errorf("%w: segment start >= end for room %d", ErrInvalidResponse, room.ID)
			}
			// Сегменты должны идти по порядку и не пересекаться
			if !prevEnd.IsZero() && slot.Start.Before(prevEnd) {
				return nil, fmt.Errorf("%w: overlapping segments for room %d", ErrInvalidResponse, room.ID)
			}
			prevEnd = slot.End

			segments = append(segments, domain.Segment{
				Start: slot.Start,
				End:   slot.End,
				Kind:  kind,
			})
		}

		rooms = append(rooms, domain.RoomTimeline{
			RoomID:       room.ID,
			RoomNumber:   room.Number,
			RoomTypeName: room.Type,
			Housekeeping: domain.HousekeepingStatus(room.Status),
			Segments:     segments,
		})
	}

	return rooms, nil
}

// BookingRoomType вложенная категория в ответе бронирования
type BookingRoomType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingAssignedRoom вложенная назначенная комната в ответе бронирования
type BookingAssignedRoom struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
}

// Booking бронирование
type Booking struct {
	ID                int64                `json:"id"`
	HotelID           int64                `json:"hotel_id"`
	BookingReference  string               `json:"booking_reference"`
	GuestName         string               `json:"guest_name"`
	GuestUUID         string               `json:"user_uuid"`
	RoomType          *BookingRoomType     `json:"room_type"`
	BookingType       string               `json:"booking_type"`
	Status            string               `json:"status"`
	ScheduledCheckIn  time.Time            `json:"scheduled_check_in"`
	ScheduledCheckOut time.Time            `json:"scheduled_check_out"`
	AssignedRoom      *BookingAssignedRoom `json:"assigned_room"`
	IsWalkIn          bool                 `json:"is_walk_in"`
	TotalAmount       float64              `json:"total_amount"`
	Commission        float64              `json:"commission"`
	CreatedAt         time.Time            `json:"created_at"`
}

// ToDomain конвертирует модель в domain.Booking
func (b *Booking) ToDomain() domain.Booking {
	booking := domain.Booking{
		ID:                b.ID,
		HotelID:           b.HotelID,
		BookingReference:  b.BookingReference,
		GuestName:         b.GuestName,
		GuestUUID:         b.GuestUUID,
		BookingType:       domain.BookingType(b.BookingType),
		Status:            domain.BookingStatus(b.Status),
		ScheduledCheckIn:  b.ScheduledCheckIn,
		ScheduledCheckOut: b.ScheduledCheckOut,
		IsWalkIn:          b.IsWalkIn,
		TotalAmount:       b.TotalAmount,
		Commission:        b.Commission,
		CreatedAt:         b.CreatedAt,
	}

	if b.RoomType != nil {
		booking.RoomTypeID = b.RoomType.ID
		booking.RoomTypeName = b.RoomType.Name
	}
	if b.AssignedRoom != nil {
		booking.AssignedRoom = &domain.AssignedRoom{
			ID:         b.AssignedRoom.ID,
			RoomNumber: b.AssignedRoom.RoomNumber,
		}
	}

	return booking
}

// CreateBookingRequest тело POST /property/bookings/create/
type CreateBookingRequest struct {
	HotelID     int64  `json:"hotel_id"`
	RoomTypeID  int64  `json:"room_type_id"`
	UserUUID    string `json:"user_uuid"`
	BookingType string `json:"booking_type"`
	IsWalkIn    bool   `json:"is_walk_in"`
	GuestName   string `json:"guest_name"`
	CheckIn     string `json:"check_in"`  // ISO 8601
	CheckOut    string `json:"check_out"` // ISO 8601
}

// BookingActionRequest тело POST /property/bookings/{id}/action/
type BookingActionRequest struct {
	Action string `json:"action"` // CHECK_IN | CHECK_OUT | CANCEL
	RoomID *int64 `json:"room_id,omitempty"`
}

// RoomType категория номеров
type RoomType struct {
	ID         int64    `json:"id"`
	HotelID    int64    `json:"hotel_id"`
	Name       string   `json:"name"`
	BasePrice  float64  `json:"base_price"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Capacity   int      `json:"capacity"`
}

// ToDomain конвертирует модель в domain.RoomType
func (t *RoomType) ToDomain() domain.RoomType {
	return domain.RoomType{
		ID:         t.ID,
		HotelID:    t.HotelID,
		Name:       t.Name,
		BasePrice:  t.BasePrice,
		HourlyRate: t.HourlyRate,
		Capacity:   t.Capacity,
	}
}

// Room физическая комната
type Room struct {
	ID         int64            `json:"id"`
	HotelID    int64            `json:"hotel_id"`
	RoomNumber string           `json:"room_number"`
	RoomType   *BookingRoomType `json:"room_type"`
	Status     string           `json:"status"`
}

// ToDomain конвертирует модель в domain.Room
func (r *Room) ToDomain() domain.Room {
	room := domain.Room{
		ID:           r.ID,
		HotelID:      r.HotelID,
		RoomNumber:   r.RoomNumber,
		Housekeeping: domain.HousekeepingStatus(r.Status),
	}
	if r.RoomType != nil {
		room.RoomTypeID = r.RoomType.ID
		room.RoomTypeName = r.RoomType.Name
	}
	return room
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
