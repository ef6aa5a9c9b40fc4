package booking_action

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

type BookingService interface {
	Action(ctx context.Context, bookingID int64, req *models.ActionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
