package get_operations_log

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

type Journal interface {
	ListByHotel(ctx context.Context, hotelID int64, limit uint64) ([]domain.OpEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
