package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
	"github.com/hourlystay/HS-OpsService/internal/service/bookings"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
	msgHotelNotFound  = "hotel not found"
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

// Handle GET /api/v1/hotels/{hotelId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	list, err := h.service.List(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/bookings - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /hotels/{id}/bookings - Failed to list bookings: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/bookings - Bookings retrieved: hotel_id=%d, count=%d",
		hotelID, len(list.Bookings))
	handlers.RespondJSON(w, http.StatusOK, list)
}
