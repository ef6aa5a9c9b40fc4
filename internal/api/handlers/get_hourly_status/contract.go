package get_hourly_status

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/hourly/models"
)

type HourlyService interface {
	LoadStatus(ctx context.Context, hotelID int64) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
