package models

import (
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/internal/service/timeline"
)

// Request модели

// StartRequest запрос на открытие почасового окна
type StartRequest struct {
	HotelID     int64
	ActorUserID int64
	Mode        domain.HourlyMode
	// CustomRange обязателен для CUSTOM режима, игнорируется для AUTO
	CustomRange *domain.TimeRange
}

// Response модели

// WindowView границы окна для HTTP ответа
type WindowView struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// StatusResponse текущее состояние почасового режима отеля
type StatusResponse struct {
	Status string      `json:"status"`
	Window *WindowView `json:"window,omitempty"`
	// Degraded выставляется, когда статус не удалось получить от PropertyService
	// и состояние по умолчанию принято как INACTIVE
	Degraded bool `json:"degraded,omitempty"`
}

// SlotsResponse снимок занятости комнат, отрендеренный в полосы
type SlotsResponse struct {
	Status      string              `json:"status"`
	Window      *WindowView         `json:"window,omitempty"`
	FetchedAt   *time.Time          `json:"fetched_at,omitempty"`
	Rooms       []timeline.RoomLane `json:"rooms"`
	BookedTotal int                 `json:"booked_total"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain-окно в StatusResponse
func FromDomainWindow(w domain.HourlyWindow) *StatusResponse {
	resp := &StatusResponse{
		Status: string(w.Status),
	}
	if w.IsActive() && w.Start != nil && w.End != nil {
		resp.Window = &WindowView{
			StartDatetime: *w.Start,
			EndDatetime:   *w.End,
		}
	}
	return resp
}

// DegradedStatus возвращает INACTIVE-ответ с пометкой о недоступности бэкенда
func DegradedStatus() *StatusResponse {
	return &StatusResponse{
		Status:   string(domain.StatusInactive),
		Degraded: true,
	}
}

// FromDomainSnapshot конвертирует окно и снимок в SlotsResponse
func FromDomainSnapshot(w domain.HourlyWindow, snap *domain.SlotSnapshot) *SlotsResponse {
	resp := &SlotsResponse{
		Status: string(w.Status),
		Rooms:  []timeline.RoomLane{},
	}
	if w.IsActive() && w.Start != nil && w.End != nil {
		resp.Window = &WindowView{
			StartDatetime: *w.Start,
			EndDatetime:   *w.End,
		}
	}
	if snap != nil {
		fetchedAt := snap.FetchedAt
		resp.FetchedAt = &fetchedAt
		resp.Rooms = timeline.Render(snap.Rooms)
		resp.BookedTotal = snap.BookedTotal()
	}
	return resp
}
