package domain

import "time"

// BookingType тип бронирования
type BookingType string

const (
	BookingNightly BookingType = "NIGHTLY"
	BookingHourly  BookingType = "HOURLY"
)

// IsValid проверяет, что тип бронирования поддерживается
func (t BookingType) IsValid() bool {
	return t == BookingNightly || t == BookingHourly
}

// BookingStatus статус бронирования на стороне PropertyService
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// BookingAction действие персонала над бронированием
type BookingAction string

const (
	ActionCheckIn  BookingAction = "CHECK_IN"
	ActionCheckOut BookingAction = "CHECK_OUT"
	ActionCancel   BookingAction = "CANCEL"
)

// IsValid проверяет, что действие поддерживается
func (a BookingAction) IsValid() bool {
	return a == ActionCheckIn || a == ActionCheckOut || a == ActionCancel
}

// Booking бронирование в отеле
type Booking struct {
	ID                int64
	HotelID           int64
	BookingReference  string
	GuestName         string
	GuestUUID         string
	RoomTypeID        int64
	RoomTypeName      string
	BookingType       BookingType
	Status            BookingStatus
	ScheduledCheckIn  time.Time
	ScheduledCheckOut time.Time
	AssignedRoom      *AssignedRoom
	IsWalkIn          bool
	TotalAmount       float64
	// Commission считается на стороне платформы, отображается read-only
	Commission float64
	CreatedAt  time.Time
}

// AssignedRoom физическая комната, назначенная бронированию при заселении
type AssignedRoom struct {
	ID         int64
	RoomNumber string
}

// CanCheckIn возвращает true, если гостя можно заселить
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut возвращает true, если гостя можно выселить
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// CanCancel возвращает true, если бронирование можно отменить
func (b *Booking) CanCancel() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// IsHourly возвращает true для почасового бронирования
func (b *Booking) IsHourly() bool {
	return b.BookingType == BookingHourly
}

// RoomType категория номеров отеля
type RoomType struct {
	ID        int64
	HotelID   int64
	Name      string
	BasePrice float64
	// HourlyRate цена за час, задана только для категорий с почасовым режимом
	HourlyRate *float64
	Capacity   int
}

// Room физическая комната отеля
type Room struct {
	ID           int64
	HotelID      int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
	Housekeeping HousekeepingStatus
}

// Hotel отель с точки зрения консоли оператора
type Hotel struct {
	ID   int64
	Name string
	// IsHourlyEnabled флаг возможности: может ли отель в принципе работать в
	// почасовом режиме. Ортогонален текущему статусу окна (HourlyWindow.Status)
	IsHourlyEnabled bool
	CheckoutTime    string // "11:00"
}
