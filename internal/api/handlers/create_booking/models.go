package create_booking

import (
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HotelID       int64      `json:"hotel_id"`
	RoomTypeID    int64      `json:"room_type_id"`
	GuestName     string     `json:"guest_name"`
	BookingType   string     `json:"booking_type"`
	CheckIn       *time.Time `json:"check_in,omitempty"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	DurationHours *int       `json:"duration_hours,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest(actorUserID int64) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		HotelID:       r.HotelID,
		ActorUserID:   actorUserID,
		RoomTypeID:    r.RoomTypeID,
		GuestName:     r.GuestName,
		BookingType:   domain.BookingType(r.BookingType),
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		DurationHours: r.DurationHours,
	}
}
