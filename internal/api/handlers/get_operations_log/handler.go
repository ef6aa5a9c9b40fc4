package get_operations_log

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hourlystay/HS-OpsService/internal/api/handlers"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
	msgInvalidLimit   = "invalid limit"
)

const maxLimit = 500

type Handler struct {
	journal Journal
	logger  Logger
}

func NewHandler(journal Journal, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/operations-log
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/operations-log - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Необязательный query-параметр limit
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 || limit > maxLimit {
			h.logger.Warn("GET /hotels/{id}/operations-log - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	events, err := h.journal.ListByHotel(r.Context(), hotelID, limit)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/operations-log - Failed: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{id}/operations-log - Events retrieved: hotel_id=%d, count=%d",
		hotelID, len(events))
	handlers.RespondJSON(w, http.StatusOK, toResponse(events))
}
