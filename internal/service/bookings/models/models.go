package models

import (
	"fmt"
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
	"github.com/hourlystay/HS-OpsService/pkg/ptr"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	HotelID     int64
	ActorUserID int64
	RoomTypeID  int64
	GuestName   string
	BookingType domain.BookingType

	// NIGHTLY: CheckIn и CheckOut обязательны
	// HOURLY: обязательны CheckIn и DurationHours, CheckOut вычисляется
	CheckIn       *time.Time
	CheckOut      *time.Time
	DurationHours *int
}

// Validate проверяет запрос локально, до какого-либо сетевого вызова
func (r *CreateBookingRequest) Validate() error {
	if r.HotelID <= 0 {
		return fmt.Errorf("hotelId must be positive")
	}
	if r.RoomTypeID <= 0 {
		return fmt.Errorf("room category must be selected")
	}
	if !r.BookingType.IsValid() {
		return fmt.Errorf("unknown booking type %q", r.BookingType)
	}
	if len(r.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("guest name too long")
	}
	if r.CheckIn == nil || r.CheckIn.IsZero() {
		return fmt.Errorf("check-in date and time are required")
	}

	switch r.BookingType {
	case domain.BookingNightly:
		if r.CheckOut == nil || r.CheckOut.IsZero() {
			return fmt.Errorf("check-out date and time are required")
		}
		if !r.CheckIn.Before(*r.CheckOut) {
			return fmt.Errorf("check-in must be before check-out")
		}
	case domain.BookingHourly:
		if r.DurationHours == nil {
			return fmt.Errorf("duration is required for hourly booking")
		}
		if *r.DurationHours < domain.MinHourlyDurationHours || *r.DurationHours > domain.MaxHourlyDurationHours {
			return fmt.Errorf("duration must be between %d and %d hours",
				domain.MinHourlyDurationHours, domain.MaxHourlyDurationHours)
		}
	}

	return nil
}

// ResolveCheckOut возвращает время выезда: явное для NIGHTLY,
// вычисленное как check-in + duration для HOURLY
func (r *CreateBookingRequest) ResolveCheckOut() time.Time {
	if r.BookingType == domain.BookingHourly {
		return r.CheckIn.Add(time.Duration(ptr.Deref(r.DurationHours)) * time.Hour)
	}
	return *r.CheckOut
}

// ToClientRequest конвертирует запрос в модель клиента PropertyService.
// Вызывается только после успешной Validate
func (r *CreateBookingRequest) ToClientRequest() propertyservice.CreateBookingRequest {
	return propertyservice.CreateBookingRequest{
		HotelID:     r.HotelID,
		RoomTypeID:  r.RoomTypeID,
		UserUUID:    domain.GuestUUIDWalkIn,
		BookingType: string(r.BookingType),
		IsWalkIn:    true,
		GuestName:   r.GuestName,
		CheckIn:     r.CheckIn.Format(time.RFC3339),
		CheckOut:    r.ResolveCheckOut().Format(time.RFC3339),
	}
}

// ActionRequest запрос на действие над бронированием
type ActionRequest struct {
	HotelID     int64
	ActorUserID int64
	Action      domain.BookingAction
	// RoomID обязателен для CHECK_IN: комната выбирается из списка доступных
	RoomID *int64
}

// Response модели

// AssignedRoomView назначенная комната в ответе
type AssignedRoomView struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64             `json:"id"`
	HotelID           int64             `json:"hotel_id"`
	BookingReference  string            `json:"booking_reference"`
	GuestName         string            `json:"guest_name"`
	RoomTypeID        int64             `json:"room_type_id"`
	RoomTypeName      string            `json:"room_type_name"`
	BookingType       string            `json:"booking_type"`
	Status            string            `json:"status"`
	ScheduledCheckIn  time.Time         `json:"scheduled_check_in"`
	ScheduledCheckOut time.Time         `json:"scheduled_check_out"`
	AssignedRoom      *AssignedRoomView `json:"assigned_room,omitempty"`
	// DurationHours заполняется только для HOURLY бронирований
	DurationHours *int `json:"duration_hours,omitempty"`
	// AvailableActions действия, допустимые для текущего статуса;
	// консоль отрисовывает по ним кнопки
	AvailableActions []string  `json:"available_actions"`
	IsWalkIn         bool      `json:"is_walk_in"`
	TotalAmount      float64   `json:"total_amount"`
	Commission       float64   `json:"commission"`
	CreatedAt        time.Time `json:"created_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RoomTypeResponse категория номеров
type RoomTypeResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	BasePrice  float64  `json:"base_price"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Capacity   int      `json:"capacity"`
}

// RoomResponse физическая комната
type RoomResponse struct {
	ID           int64  `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomTypeID   int64  `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Housekeeping string `json:"housekeeping_status"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		HotelID:           b.HotelID,
		BookingReference:  b.BookingReference,
		GuestName:         b.GuestName,
		RoomTypeID:        b.RoomTypeID,
		RoomTypeName:      b.RoomTypeName,
		BookingType:       string(b.BookingType),
		Status:            string(b.Status),
		ScheduledCheckIn:  b.ScheduledCheckIn,
		ScheduledCheckOut: b.ScheduledCheckOut,
		IsWalkIn:          b.IsWalkIn,
		TotalAmount:       b.TotalAmount,
		Commission:        b.Commission,
		CreatedAt:         b.CreatedAt,
	}

	if b.AssignedRoom != nil {
		resp.AssignedRoom = &AssignedRoomView{
			ID:         b.AssignedRoom.ID,
			RoomNumber: b.AssignedRoom.RoomNumber,
		}
	}

	if b.IsHourly() {
		resp.DurationHours = ptr.Ptr(int(b.ScheduledCheckOut.Sub(b.ScheduledCheckIn).Hours()))
	}

	resp.AvailableActions = availableActions(b)

	return resp
}

// availableActions возвращает действия, допустимые для статуса бронирования
func availableActions(b *domain.Booking) []string {
	actions := make([]string, 0, 3)
	if b.CanCheckIn() {
		actions = append(actions, string(domain.ActionCheckIn))
	}
	if b.CanCheckOut() {
		actions = append(actions, string(domain.ActionCheckOut))
	}
	if b.CanCancel() {
		actions = append(actions, string(domain.ActionCancel))
	}
	return actions
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}
	for i := range bookings {
		if b := FromDomainBooking(&bookings[i]); b != nil {
			resp.Bookings[i] = *b
		}
	}
	return resp
}

// FromDomainRoomTypes конвертирует категории в DTO
func FromDomainRoomTypes(types []domain.RoomType) []RoomTypeResponse {
	resp := make([]RoomTypeResponse, len(types))
	for i, t := range types {
		resp[i] = RoomTypeResponse{
			ID:         t.ID,
			Name:       t.Name,
			BasePrice:  t.BasePrice,
			HourlyRate: t.HourlyRate,
			Capacity:   t.Capacity,
		}
	}
	return resp
}

// FromDomainRooms конвертирует комнаты в DTO
func FromDomainRooms(rooms []domain.Room) []RoomResponse {
	resp := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = RoomResponse{
			ID:           r.ID,
			RoomNumber:   r.RoomNumber,
			RoomTypeID:   r.RoomTypeID,
			RoomTypeName: r.RoomTypeName,
			Housekeeping: string(r.Housekeeping),
		}
	}
	return resp
}
