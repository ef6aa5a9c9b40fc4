package timeline

import "github.com/hourlystay/HS-OpsService/internal/domain"

// Block один визуальный блок таймлайна комнаты
//
// Weight пропорциональный вес блока (flex-единицы): длительность сегмента в
// минутах, но не меньше domain.MinBlockWeight. Ширина блока — доля Weight от
// суммы весов всех блоков полосы, блоки идут последовательно и не привязаны к
// глобальной оси времени.
type Block struct {
	Kind    domain.SegmentKind `json:"kind,omitempty"`
	Weight  int                `json:"weight"`
	Label   string             `json:"label"`
	Tooltip string             `json:"tooltip"`
	// Placeholder блок "нет данных", занимающий всю ширину полосы
	Placeholder bool `json:"placeholder,omitempty"`
}

// RoomLane полоса таймлайна одной комнаты
type RoomLane struct {
	RoomID       int64                     `json:"roomId"`
	RoomNumber   string                    `json:"roomNumber"`
	RoomTypeName string                    `json:"roomTypeName"`
	Housekeeping domain.HousekeepingStatus `json:"housekeepingStatus"`
	Blocks       []Block                   `json:"blocks"`
	// TotalWeight сумма весов блоков, знаменатель для вычисления долей
	TotalWeight int `json:"totalWeight"`
}
