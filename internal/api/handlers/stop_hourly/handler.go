package stop_hourly

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
	"github.com/hourlystay/HS-OpsService/internal/api/middleware"
	"github.com/hourlystay/HS-OpsService/internal/service/hourly"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
	msgMissingUserID  = "missing user ID"
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

// Handle DELETE /api/v1/hotels/{hotelId}/hourly-operations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /hotels/{id}/hourly-operations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /hotels/{id}/hourly-operations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Остановка идемпотентна: повторный вызов для неактивного отеля
	// завершается успешно без обращения к PropertyService
	if err := h.service.Stop(r.Context(), hotelID, userID); err != nil {
		switch {
		case errors.Is(err, hourly.ErrHotelNotFound):
			h.logger.Warn("DELETE /hotels/{id}/hourly-operations - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("DELETE /hotels/{id}/hourly-operations - Failed to stop: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /hotels/{id}/hourly-operations - Stopped: hotel_id=%d, user_id=%d", hotelID, userID)
	handlers.RespondNoContent(w)
}
