package start_hourly

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/service/hourly/models"
)

type HourlyService interface {
	Start(ctx context.Context, req *models.StartRequest) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
