package bookings

import (
	"context"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
)

// PropertyClient интерфейс клиента PropertyService для операций с бронированиями
type PropertyClient interface {
	ListBookings(ctx context.Context, hotelID int64) ([]domain.Booking, error)
	ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error)
	ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error)
	CreateBooking(ctx context.Context, req propertyservice.CreateBookingRequest) (*domain.Booking, error)
	BookingAction(ctx context.Context, bookingID int64, action domain.BookingAction, roomID *int64) error
	GetAvailableRooms(ctx context.Context, bookingID int64) ([]domain.Room, error)
}

// SnapshotRefresher интерфейс форсированного обновления снимка слотов.
// При неактивном почасовом окне обновление является no-op
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context, hotelID int64) error
}

// Journal интерфейс журнала операций. Ошибки журнала не фатальны для операций
type Journal interface {
	Append(ctx context.Context, event domain.OpEvent) (*domain.OpEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
