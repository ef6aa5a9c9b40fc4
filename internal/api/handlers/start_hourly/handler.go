package start_hourly

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
	msgInvalidHotelID     = "invalid hotel ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgHotelNotFound      = "hotel not found"
	msgNotEnabled         = "hourly operations are not enabled for this hotel"
	msgAlreadyActive      = "hourly operations already active"
	msgTimeRangeRequired  = "Please select a time range"
	msgInvalidTimeRange   = "invalid time range"
	msgInvalidMode        = "invalid mode"
	msgConflict           = "hourly operations could not be started"
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

// Handle POST /api/v1/hotels/{hotelId}/hourly-operations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/hourly-operations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels/{id}/hourly-operations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req StartHourlyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/hourly-operations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, err := h.service.Start(r.Context(), req.ToServiceRequest(hotelID, userID))
	if err != nil {
		switch {
		case errors.Is(err, hourly.ErrInvalidMode):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Invalid mode: hotel_id=%d, mode=%s",
				hotelID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, hourly.ErrTimeRangeRequired):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Time range required: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgTimeRangeRequired)

		case errors.Is(err, hourly.ErrInvalidTimeRange):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Invalid time range: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, hourly.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, hourly.ErrHourlyNotEnabled):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Hourly not enabled: hotel_id=%d", hotelID)
			handlers.RespondForbidden(w, msgNotEnabled)

		case errors.Is(err, hourly.ErrAlreadyActive):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Already active: hotel_id=%d", hotelID)
			handlers.RespondConflict(w, msgAlreadyActive)

		case errors.Is(err, hourly.ErrConflict):
			h.logger.Warn("POST /hotels/{id}/hourly-operations - Conflict: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /hotels/{id}/hourly-operations - Failed to start: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/hourly-operations - Started: hotel_id=%d, mode=%s, user_id=%d",
		hotelID, req.Mode, userID)
	handlers.RespondJSON(w, http.StatusOK, status)
}
