package hourly

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

// PropertyClient интерфейс клиента PropertyService для операций почасового режима
type PropertyClient interface {
	GetHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error)
	GetHourlyOperations(ctx context.Context, hotelID int64) (domain.HourlyWindow, error)
	StartHourlyOperations(ctx context.Context, hotelID int64, mode domain.HourlyMode, bounds *domain.TimeRange) (domain.HourlyWindow, error)
	StopHourlyOperations(ctx context.Context, hotelID int64) error
	GetHourlySlots(ctx context.Context, hotelID int64) ([]domain.RoomTimeline, error)
}

// Journal интерфейс журнала операций. Ошибки журнала не фатальны для операций
type Journal interface {
	Append(ctx context.Context, event domain.OpEvent) (*domain.OpEvent, error)
}

// MetricsRecorder интерфейс метрик почасового режима. Может быть nil
type MetricsRecorder interface {
	IncSlotFetch(result string)
	IncSlotFetchError(reason string)
	IncStaleDrop(hotelID int64)
	AddActiveWindows(delta float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
