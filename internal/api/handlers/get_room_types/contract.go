package get_room_types

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

type BookingService interface {
	RoomTypes(ctx context.Context, hotelID int64) ([]models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
