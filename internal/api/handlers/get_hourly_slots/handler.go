package get_hourly_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
	"github.com/hourlystay/HS-OpsService/internal/service/hourly"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
	msgHotelNotFound  = "hotel not found"
)

type Handler struct {
	service HourlyService
	logger  Logger
}

func NewHandler(service HourlyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/hourly-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/hourly-slots - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	slots, err := h.service.Slots(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hourly.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/hourly-slots - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /hotels/{id}/hourly-slots - Failed to get slots: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/hourly-slots - Slots retrieved: hotel_id=%d, rooms=%d",
		hotelID, len(slots.Rooms))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
