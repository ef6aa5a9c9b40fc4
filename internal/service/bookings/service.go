package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	propertyClient "github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings/models"
)

// Service шлюз действий персонала над бронированиями
//
// Переводит дискретные действия консоли (создание, заселение, выселение, отмена)
// в вызовы PropertyService и определяет, какое состояние обновляется после успеха.
// Справочные данные (категории, комнаты) кэшируются с TTL, списки бронирований
// всегда запрашиваются свежими.
type Service struct {
	client    PropertyClient
	refresher SnapshotRefresher
	journal   Journal
	cache     *gocache.Cache
	logger    Logger
}

// NewService создает новый шлюз бронирований
func NewService(
	client PropertyClient,
	refresher SnapshotRefresher,
	journal Journal,
	referenceTTL time.Duration,
	logger Logger,
) *Service {
	if referenceTTL <= 0 {
		referenceTTL = domain.DefaultReferenceTTL
	}

	return &Service{
		client:    client,
		refresher: refresher,
		journal:   journal,
		cache:     gocache.New(referenceTTL, 2*referenceTTL),
		logger:    logger,
	}
}

// List получает список бронирований отеля
func (s *Service) List(ctx context.Context, hotelID int64) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for hotel=%d", hotelID)

	bookings, err := s.client.ListBookings(ctx, hotelID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			s.logger.Warn("List: hotel=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("List: upstream error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: List - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for hotel=%d", len(bookings), hotelID)
	return models.FromDomainBookingList(bookings), nil
}

// Create создает бронирование.
//
// Валидация (категория выбрана; для NIGHTLY заданы обе даты; для HOURLY задана
// длительность, выезд вычисляется) выполняется локально до сетевого вызова.
// Конфликт бэкенда (нет свободных комнат) возвращается отдельной ошибкой,
// отличимой от прочих сбоев.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: hotel=%d, category=%d, type=%s, user=%d",
		req.HotelID, req.RoomTypeID, req.BookingType, req.ActorUserID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.client.CreateBooking(ctx, req.ToClientRequest())
	if err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrConflict):
			s.logger.Warn("Create: no rooms available for hotel=%d category=%d", req.HotelID, req.RoomTypeID)
			return nil, ErrNoRoomsAvailable
		case errors.Is(err, propertyClient.ErrHotelNotFound):
			return nil, ErrHotelNotFound
		default:
			s.logger.Error("Create: upstream error for hotel=%d: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: Create - upstream error: %v", ErrInternal, err)
		}
	}

	s.journalEvent(ctx, domain.OpEvent{
		HotelID:     req.HotelID,
		Kind:        domain.EventBookingCreated,
		ActorUserID: req.ActorUserID,
		BookingID:   &booking.ID,
		Details:     fmt.Sprintf("type=%s ref=%s", booking.BookingType, booking.BookingReference),
	})

	s.invalidateReference(req.HotelID)

	s.logger.Info("Create: booking id=%d ref=%s created for hotel=%d",
		booking.ID, booking.BookingReference, req.HotelID)
	return models.FromDomainBooking(booking), nil
}

// Action выполняет действие над бронированием (CHECK_IN / CHECK_OUT / CANCEL).
//
// Для CHECK_IN комната обязана быть выбрана из списка доступных. После успеха
// снимок слотов обновляется форсированно (no-op при неактивном окне); ошибка
// обновления не фатальна для самого действия.
func (s *Service) Action(ctx context.Context, bookingID int64, req *models.ActionRequest) error {
	s.logger.Info("Action: booking=%d, action=%s, hotel=%d, user=%d",
		bookingID, req.Action, req.HotelID, req.ActorUserID)

	if !req.Action.IsValid() {
		s.logger.Warn("Action: booking=%d unknown action %q", bookingID, req.Action)
		return ErrInvalidAction
	}

	var roomID *int64
	if req.Action == domain.ActionCheckIn {
		if req.RoomID == nil || *req.RoomID <= 0 {
			s.logger.Warn("Action: booking=%d check-in without room", bookingID)
			return ErrRoomNotSelected
		}
		roomID = req.RoomID
	}

	if err := s.client.BookingAction(ctx, bookingID, req.Action, roomID); err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrBookingNotFound):
			s.logger.Warn("Action: booking=%d not found", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, propertyClient.ErrConflict):
			s.logger.Warn("Action: booking=%d conflict for action=%s", bookingID, req.Action)
			return ErrConflict
		default:
			s.logger.Error("Action: booking=%d upstream error: %v", bookingID, err)
			return fmt.Errorf("%w: Action - upstream error: %v", ErrInternal, err)
		}
	}

	s.journalEvent(ctx, domain.OpEvent{
		HotelID:     req.HotelID,
		Kind:        eventForAction(req.Action),
		ActorUserID: req.ActorUserID,
		BookingID:   &bookingID,
	})

	// Заселение и выселение меняют статус уборки комнат, закэшированные
	// справочники отеля после мутации недостоверны
	s.invalidateReference(req.HotelID)

	if s.refresher != nil {
		if err := s.refresher.RefreshSnapshot(ctx, req.HotelID); err != nil {
			s.logger.Warn("Action: booking=%d snapshot refresh failed: %v", bookingID, err)
		}
	}

	s.logger.Info("Action: booking=%d action=%s completed", bookingID, req.Action)
	return nil
}

// AvailableRooms получает комнаты, доступные для заселения по бронированию
func (s *Service) AvailableRooms(ctx context.Context, bookingID int64) ([]models.RoomResponse, error) {
	s.logger.Info("AvailableRooms: booking=%d", bookingID)

	rooms, err := s.client.GetAvailableRooms(ctx, bookingID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrBookingNotFound) {
			s.logger.Warn("AvailableRooms: booking=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("AvailableRooms: booking=%d upstream error: %v", bookingID, err)
		return nil, fmt.Errorf("%w: AvailableRooms - upstream error: %v", ErrInternal, err)
	}

	return models.FromDomainRooms(rooms), nil
}

// RoomTypes получает категории номеров отеля (с кэшированием)
func (s *Service) RoomTypes(ctx context.Context, hotelID int64) ([]models.RoomTypeResponse, error) {
	key := fmt.Sprintf("room-types:%d", hotelID)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.RoomTypeResponse), nil
	}

	types, err := s.client.ListRoomTypes(ctx, hotelID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		s.logger.Error("RoomTypes: upstream error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: RoomTypes - upstream error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRoomTypes(types)
	s.cache.SetDefault(key, resp)
	return resp, nil
}

// Rooms получает физические комнаты отеля (с кэшированием)
func (s *Service) Rooms(ctx context.Context, hotelID int64) ([]models.RoomResponse, error) {
	key := fmt.Sprintf("rooms:%d", hotelID)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.RoomResponse), nil
	}

	rooms, err := s.client.ListRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Rooms: upstream error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: Rooms - upstream error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRooms(rooms)
	s.cache.SetDefault(key, resp)
	return resp, nil
}

// Вспомогательные методы

// invalidateReference сбрасывает кэш справочников отеля после мутации бронирований
func (s *Service) invalidateReference(hotelID int64) {
	s.cache.Delete(fmt.Sprintf("room-types:%d", hotelID))
	s.cache.Delete(fmt.Sprintf("rooms:%d", hotelID))
}

func eventForAction(action domain.BookingAction) domain.OpEventKind {
	switch action {
	case domain.ActionCheckIn:
		return domain.EventCheckedIn
	case domain.ActionCheckOut:
		return domain.EventCheckedOut
	default:
		return domain.EventCancelled
	}
}

// journalEvent пишет событие в журнал операций. Ошибка журнала не фатальна
func (s *Service) journalEvent(ctx context.Context, event domain.OpEvent) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Append(ctx, event); err != nil {
		s.logger.Error("journalEvent: hotel=%d kind=%s: %v", event.HotelID, event.Kind, err)
	}
}
