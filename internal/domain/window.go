package domain

import "time"

// HourlyStatus статус почасового режима отеля
type HourlyStatus string

const (
	StatusActive   HourlyStatus = "ACTIVE"
	StatusInactive HourlyStatus = "INACTIVE"
)

// HourlyMode режим открытия почасового окна
type HourlyMode string

const (
	// ModeAuto окно открывается немедленно и закрывается в стандартное
	// время выезда на следующий день (границы назначает PropertyService)
	ModeAuto HourlyMode = "AUTO"

	// ModeCustom границы окна задаются вызывающей стороной явно
	ModeCustom HourlyMode = "CUSTOM"
)

// IsValid проверяет, что режим является одним из поддерживаемых
func (m HourlyMode) IsValid() bool {
	return m == ModeAuto || m == ModeCustom
}

// HourlyWindow почасовое окно одного отеля
//
// Инвариант: Start и End присутствуют тогда и только тогда, когда Status == ACTIVE,
// и при этом Start < End
type HourlyWindow struct {
	Status HourlyStatus
	Start  *time.Time
	End    *time.Time
}

// InactiveWindow возвращает окно в неактивном состоянии без границ
func InactiveWindow() HourlyWindow {
	return HourlyWindow{Status: StatusInactive}
}

// ActiveWindow возвращает активное окно с указанными границами
func ActiveWindow(start, end time.Time) HourlyWindow {
	return HourlyWindow{
		Status: StatusActive,
		Start:  &start,
		End:    &end,
	}
}

// IsActive возвращает true, если окно активно
func (w HourlyWindow) IsActive() bool {
	return w.Status == StatusActive
}

// Validate проверяет инвариант окна
func (w HourlyWindow) Validate() error {
	switch w.Status {
	case StatusActive:
		if w.Start == nil || w.End == nil {
			return ErrWindowBoundsMissing
		}
		if !w.Start.Before(*w.End) {
			return ErrInvalidWindowBounds
		}
	case StatusInactive:
		if w.Start != nil || w.End != nil {
			return ErrWindowBoundsPresent
		}
	default:
		return ErrInvalidWindowStatus
	}
	return nil
}

// TimeRange пара упорядоченных временных границ для CUSTOM режима
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Validate проверяет, что границы заданы и упорядочены
func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrWindowBoundsMissing
	}
	if !r.Start.Before(r.End) {
		return ErrInvalidWindowBounds
	}
	return nil
}
