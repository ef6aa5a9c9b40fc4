package hourly

import (
	"sync"
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/pkg/poller"
)

// session состояние почасового режима одного отеля
//
// Сессия — единственный владелец окна и снимка слотов этого отеля: никакие два
// потребителя не мутируют одно и то же состояние напрямую, все изменения идут
// через методы сессии под мьютексом
type session struct {
	hotelID int64

	// transition сериализует переходы INACTIVE <-> ACTIVE целиком: проверку
	// статуса, сетевой вызов и смену состояния. Без него два конкурентных
	// Start прошли бы проверку IsActive до того, как первый успел активировать
	// сессию. Доступ к полю poller тоже только под этим мьютексом.
	// Нельзя ждать остановки поллера, удерживая transition: цикл опроса сам
	// берёт его на пути удалённого истечения окна
	transition sync.Mutex

	mu       sync.RWMutex
	window   domain.HourlyWindow
	snapshot *domain.SlotSnapshot

	// issuedSeq номер последнего выданного опроса, appliedSeq — последнего
	// применённого снимка. Ответ с seq <= appliedSeq устарел и отбрасывается
	issuedSeq  uint64
	appliedSeq uint64

	poller *poller.Poller
}

func newSession(hotelID int64) *session {
	return &session{
		hotelID: hotelID,
		window:  domain.InactiveWindow(),
	}
}

// Window возвращает текущее окно
func (s *session) Window() domain.HourlyWindow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

// Snapshot возвращает последний применённый снимок (может быть nil)
func (s *session) Snapshot() *domain.SlotSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// IsActive возвращает true, если окно сейчас активно
func (s *session) IsActive() bool {
	return s.Window().IsActive()
}

// activate переводит сессию в ACTIVE с указанными границами
func (s *session) activate(w domain.HourlyWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = w
}

// deactivate переводит сессию в INACTIVE и очищает снимок безусловно
func (s *session) deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = domain.InactiveWindow()
	s.snapshot = nil
}

// updateWindow обновляет границы активного окна, наблюдаемые при опросе
func (s *session) updateWindow(w domain.HourlyWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window.IsActive() {
		s.window = w
	}
}

// nextSeq выдает номер для нового опроса
func (s *session) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedSeq++
	return s.issuedSeq
}

// applySnapshot применяет снимок, если он не устарел.
// Возвращает false для ответов, обогнанных более поздним опросом.
func (s *session) applySnapshot(seq uint64, rooms []domain.RoomTimeline, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		return false
	}
	// Снимок не активной сессии не применяется: Stop уже очистил состояние
	if !s.window.IsActive() {
		return false
	}

	s.appliedSeq = seq
	s.snapshot = &domain.SlotSnapshot{
		HotelID:   s.hotelID,
		Rooms:     rooms,
		FetchedAt: at,
		Seq:       seq,
	}
	return true
}
