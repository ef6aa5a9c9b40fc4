package get_hourly_slots

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/hourly/models"
)

type HourlyService interface {
	Slots(ctx context.Context, hotelID int64) (*models.SlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
