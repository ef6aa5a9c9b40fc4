package start_hourly

import (
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/service/hourly/models"
)

// StartHourlyRequest HTTP request model
type StartHourlyRequest struct {
	Mode          string     `json:"mode"`
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *StartHourlyRequest) ToServiceRequest(hotelID, actorUserID int64) *models.StartRequest {
	req := &models.StartRequest{
		HotelID:     hotelID,
		ActorUserID: actorUserID,
		Mode:        domain.HourlyMode(r.Mode),
	}
	if r.StartDatetime != nil && r.EndDatetime != nil {
		req.CustomRange = &domain.TimeRange{
			Start: *r.StartDatetime,
			End:   *r.EndDatetime,
		}
	}
	return req
}
