package domain

import "time"

// OpEventKind тип события в журнале операций
type OpEventKind string

const (
	EventWindowStarted  OpEventKind = "WINDOW_STARTED"
	EventWindowStopped  OpEventKind = "WINDOW_STOPPED"
	EventWindowExpired  OpEventKind = "WINDOW_EXPIRED"
	EventBookingCreated OpEventKind = "BOOKING_CREATED"
	EventCheckedIn      OpEventKind = "CHECKED_IN"
	EventCheckedOut     OpEventKind = "CHECKED_OUT"
	EventCancelled      OpEventKind = "CANCELLED"
)

// OpEvent запись журнала операций консоли
//
// Журнал append-only: записи создаются при переходах окна и действиях персонала
// и никогда не изменяются
type OpEvent struct {
	ID          int64
	HotelID     int64
	Kind        OpEventKind
	ActorUserID int64
	Mode        *HourlyMode
	WindowStart *time.Time
	WindowEnd   *time.Time
	BookingID   *int64
	Details     string
	CreatedAt   time.Time
}
