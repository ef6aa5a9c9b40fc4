package booking_action

import (
	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

// BookingActionRequest HTTP request model
type BookingActionRequest struct {
	HotelID int64  `json:"hotel_id"`
	Action  string `json:"action"`
	RoomID  *int64 `json:"room_id,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *BookingActionRequest) ToServiceRequest(actorUserID int64) *models.ActionRequest {
	return &models.ActionRequest{
		HotelID:     r.HotelID,
		ActorUserID: actorUserID,
		Action:      domain.BookingAction(r.Action),
		RoomID:      r.RoomID,
	}
}
