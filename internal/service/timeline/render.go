package timeline

import (
	"fmt"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

// Render превращает таймлайны комнат в полосы пропорциональных блоков.
// Чистая функция: не мутирует вход и не имеет побочных эффектов.
func Render(rooms []domain.RoomTimeline) []RoomLane {
	lanes := make([]RoomLane, len(rooms))
	for i, room := range rooms {
		lanes[i] = renderLane(room)
	}
	return lanes
}

func renderLane(room domain.RoomTimeline) RoomLane {
	lane := RoomLane{
		RoomID:       room.RoomID,
		RoomNumber:   room.RoomNumber,
		RoomTypeName: room.RoomTypeName,
		Housekeeping: room.Housekeeping,
	}

	// Комната без данных рендерится одним блоком-заглушкой на всю ширину
	if len(room.Segments) == 0 {
		lane.Blocks = []Block{{
			Weight:      1,
			Label:       domain.PlaceholderLabel,
			Tooltip:     domain.PlaceholderLabel,
			Placeholder: true,
		}}
		lane.TotalWeight = 1
		return lane
	}

	lane.Blocks = make([]Block, len(room.Segments))
	for i, seg := range room.Segments {
		block := Block{
			Kind:    seg.Kind,
			Weight:  seg.DurationMinutes(),
			Label:   segmentLabel(seg.Kind),
			Tooltip: segmentTooltip(seg),
		}
		// Субминутные и очень короткие сегменты должны оставаться кликабельными
		if block.Weight < domain.MinBlockWeight {
			block.Weight = domain.MinBlockWeight
		}
		lane.Blocks[i] = block
		lane.TotalWeight += block.Weight
	}

	return lane
}

func segmentLabel(kind domain.SegmentKind) string {
	if kind == domain.SegmentBooked {
		return "Booked"
	}
	return "Free"
}

// segmentTooltip форматирует подсказку блока: "09:40 - 11:00"
func segmentTooltip(seg domain.Segment) string {
	return fmt.Sprintf("%s - %s",
		seg.Start.Format(domain.TimeFormat),
		seg.End.Format(domain.TimeFormat),
	)
}
