package stop_hourly

import "context"

type HourlyService interface {
	Stop(ctx context.Context, hotelID, actorUserID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
