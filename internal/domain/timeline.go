package domain

import "time"

// SegmentKind тип сегмента таймлайна комнаты
type SegmentKind string

const (
	SegmentBooked SegmentKind = "BOOKED"
	SegmentFree   SegmentKind = "FREE"
)

// HousekeepingStatus статус уборки комнаты
type HousekeepingStatus string

const (
	HousekeepingClean       HousekeepingStatus = "CLEAN"
	HousekeepingDirty       HousekeepingStatus = "DIRTY"
	HousekeepingMaintenance HousekeepingStatus = "MAINTENANCE"
)

// Segment непрерывный временной отрезок одной комнаты
type Segment struct {
	Start time.Time
	End   time.Time
	Kind  SegmentKind
}

// DurationMinutes длительность сегмента в минутах
func (s Segment) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// RoomTimeline таймлайн занятости одной физической комнаты.
//
// Инвариант: сегменты не пересекаются и упорядочены по Start. Сегменты не обязаны
// покрывать окно целиком — разрывы трактуются как отсутствие данных.
// Снимок никогда не мутируется: каждый опрос заменяет его целиком.
type RoomTimeline struct {
	RoomID       int64
	RoomNumber   string
	RoomTypeName string
	Housekeeping HousekeepingStatus
	Segments     []Segment
}

// BookedCount количество занятых сегментов комнаты
func (t RoomTimeline) BookedCount() int {
	n := 0
	for _, s := range t.Segments {
		if s.Kind == SegmentBooked {
			n++
		}
	}
	return n
}

// SlotSnapshot снимок таймлайнов всех комнат отеля на момент опроса
type SlotSnapshot struct {
	HotelID   int64
	Rooms     []RoomTimeline
	FetchedAt time.Time
	// Seq монотонный номер опроса, по которому отбрасываются устаревшие ответы
	Seq uint64
}

// BookedTotal суммарное количество занятых сегментов по всем комнатам
func (s *SlotSnapshot) BookedTotal() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, room := range s.Rooms {
		n += room.BookedCount()
	}
	return n
}
