package get_operations_log

import (
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

// OpEventResponse запись журнала операций в HTTP ответе
type OpEventResponse struct {
	ID          int64      `json:"id"`
	HotelID     int64      `json:"hotel_id"`
	Kind        string     `json:"kind"`
	ActorUserID int64      `json:"actor_user_id"`
	Mode        *string    `json:"mode,omitempty"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`
	BookingID   *int64     `json:"booking_id,omitempty"`
	Details     string     `json:"details,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// OperationsLogResponse ответ со списком записей журнала
type OperationsLogResponse struct {
	Events []OpEventResponse `json:"events"`
}

func toResponse(events []domain.OpEvent) *OperationsLogResponse {
	resp := &OperationsLogResponse{Events: make([]OpEventResponse, 0, len(events))}
	for _, e := range events {
		item := OpEventResponse{
			ID:          e.ID,
			HotelID:     e.HotelID,
			Kind:        string(e.Kind),
			ActorUserID: e.ActorUserID,
			WindowStart: e.WindowStart,
			WindowEnd:   e.WindowEnd,
			BookingID:   e.BookingID,
			Details:     e.Details,
			CreatedAt:   e.CreatedAt,
		}
		if e.Mode != nil {
			mode := string(*e.Mode)
			item.Mode = &mode
		}
		resp.Events = append(resp.Events, item)
	}
	return resp
}
