package get_bookings

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, hotelID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
