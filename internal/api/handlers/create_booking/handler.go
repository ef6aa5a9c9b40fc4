package create_booking

import (
	"errors"
	"net/http"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
	"github.com/hourlystay/HS-OpsService/internal/api/middleware"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgHotelNotFound      = "hotel not found"
	msgNoRoomsAvailable   = "No rooms available!"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: hotel_id=%d, error=%v", req.HotelID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrNoRoomsAvailable):
			h.logger.Warn("POST /bookings - No rooms available: hotel_id=%d, room_type_id=%d",
				req.HotelID, req.RoomTypeID)
			handlers.RespondConflict(w, msgNoRoomsAvailable)

		case errors.Is(err, bookings.ErrHotelNotFound):
			h.logger.Warn("POST /bookings - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: hotel_id=%d, error=%v",
				req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, hotel_id=%d, user_id=%d",
		booking.ID, req.HotelID, userID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
