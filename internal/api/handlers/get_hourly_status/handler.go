package get_hourly_status

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

// Handle GET /api/v1/hotels/{hotelId}/hourly-operations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/hourly-operations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Статус отказоустойчив: при недоступности PropertyService сервис
	// возвращает INACTIVE с пометкой degraded вместо ошибки
	status, err := h.service.LoadStatus(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hourly.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/hourly-operations - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /hotels/{id}/hourly-operations - Failed to load status: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/hourly-operations - Status loaded: hotel_id=%d, status=%s",
		hotelID, status.Status)
	handlers.RespondJSON(w, http.StatusOK, status)
}
