package get_available_rooms

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

type BookingService interface {
	AvailableRooms(ctx context.Context, bookingID int64) ([]models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
