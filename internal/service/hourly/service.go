package hourly

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	propertyClient "github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
	"github.com/hourlystay/HS-OpsService/internal/service/hourly/models"
	"github.com/hourlystay/HS-OpsService/pkg/poller"
)

// TimeProvider интерфейс для получения текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service контроллер почасовых окон
//
// Единственный источник истины о статусе почасового режима отеля в рамках
// жизни сервиса. Переходы состояния: INACTIVE --Start--> ACTIVE --Stop--> INACTIVE,
// других переходов нет. Пока окно активно, фоновый поллер обновляет снимок
// занятости комнат.
type Service struct {
	client       PropertyClient
	journal      Journal
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger

	pollInterval time.Duration

	// rootCtx живет от создания сервиса до Close: от него наследуются
	// контексты всех поллеров, чтобы shutdown останавливал опрос
	rootCtx   context.Context
	rootStop  context.CancelFunc
	closeOnce sync.Once

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewService создает новый контроллер почасовых окон
func NewService(
	client PropertyClient,
	journal Journal,
	metrics MetricsRecorder,
	pollInterval time.Duration,
	logger Logger,
) *Service {
	if pollInterval <= 0 {
		pollInterval = domain.DefaultPollInterval
	}

	rootCtx, rootStop := context.WithCancel(context.Background())

	return &Service{
		client:       client,
		journal:      journal,
		metrics:      metrics,
		timeProvider: RealTimeProvider{},
		logger:       logger,
		pollInterval: pollInterval,
		rootCtx:      rootCtx,
		rootStop:     rootStop,
		sessions:     make(map[int64]*session),
	}
}

// Close останавливает все поллеры. Вызывается при shutdown сервиса
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.rootStop()

		s.mu.Lock()
		sessions := make([]*session, 0, len(s.sessions))
		for _, sess := range s.sessions {
			sessions = append(sessions, sess)
		}
		s.mu.Unlock()

		for _, sess := range sessions {
			sess.transition.Lock()
			p := sess.poller
			sess.poller = nil
			sess.transition.Unlock()

			if p != nil {
				p.Stop()
			}
		}

		s.logger.Info("Hourly service closed, %d sessions released", len(sessions))
	})
}

// LoadStatus получает текущий статус почасового окна отеля.
//
// При недоступности PropertyService статус деградирует в INACTIVE (fail safe):
// ошибка логируется, но наружу не пробрасывается, в ответе выставляется Degraded.
// Локальная сессия приводится в соответствие с наблюдаемым статусом: ACTIVE
// запускает поллер, INACTIVE останавливает его и очищает снимок.
func (s *Service) LoadStatus(ctx context.Context, hotelID int64) (*models.StatusResponse, error) {
	s.logger.Info("LoadStatus: hotel=%d", hotelID)

	sess := s.session(hotelID)

	window, err := s.client.GetHourlyOperations(ctx, hotelID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			s.logger.Warn("LoadStatus: hotel=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("LoadStatus: hotel=%d, falling back to INACTIVE: %v", hotelID, err)
		return models.DegradedStatus(), nil
	}

	sess.transition.Lock()
	var stopped *poller.Poller
	if window.IsActive() {
		s.activateSession(sess, window)
	} else if sess.IsActive() {
		s.logger.Info("LoadStatus: hotel=%d window closed remotely", hotelID)
		stopped = s.deactivateSession(ctx, sess, domain.EventWindowExpired, 0)
	}
	resp := models.FromDomainWindow(sess.Window())
	sess.transition.Unlock()

	if stopped != nil {
		stopped.Stop()
	}
	return resp, nil
}

// Start открывает почасовое окно отеля.
//
// Валидация CUSTOM диапазона выполняется локально, до какого-либо сетевого
// вызова. Start при уже активном окне отклоняется как недопустимый переход.
// При ошибке бэкенда состояние остается неизменным.
func (s *Service) Start(ctx context.Context, req *models.StartRequest) (*models.StatusResponse, error) {
	s.logger.Info("Start: hotel=%d, mode=%s, user=%d", req.HotelID, req.Mode, req.ActorUserID)

	if !req.Mode.IsValid() {
		s.logger.Warn("Start: hotel=%d invalid mode %q", req.HotelID, req.Mode)
		return nil, ErrInvalidMode
	}

	var bounds *domain.TimeRange
	if req.Mode == domain.ModeCustom {
		if req.CustomRange == nil {
			s.logger.Warn("Start: hotel=%d custom mode without range", req.HotelID)
			return nil, ErrTimeRangeRequired
		}
		if err := req.CustomRange.Validate(); err != nil {
			s.logger.Warn("Start: hotel=%d invalid custom range: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		bounds = req.CustomRange
	}

	// Переход удерживается целиком: от проверки статуса до активации сессии.
	// Конкурентный Start ждёт здесь и после завершения первого получает
	// ErrAlreadyActive, а не второй сетевой вызов
	sess := s.session(req.HotelID)
	sess.transition.Lock()
	defer sess.transition.Unlock()

	if sess.IsActive() {
		s.logger.Warn("Start: hotel=%d window already active", req.HotelID)
		return nil, ErrAlreadyActive
	}

	// Флаг возможности отеля ортогонален статусу окна и проверяется отдельно
	hotel, err := s.client.GetHotel(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			s.logger.Warn("Start: hotel=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Start: failed to get hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}
	if !hotel.IsHourlyEnabled {
		s.logger.Warn("Start: hotel=%d is not enabled for hourly mode", req.HotelID)
		return nil, ErrHourlyNotEnabled
	}

	window, err := s.client.StartHourlyOperations(ctx, req.HotelID, req.Mode, bounds)
	if err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrConflict):
			s.logger.Warn("Start: hotel=%d conflict: %v", req.HotelID, err)
			return nil, ErrConflict
		case errors.Is(err, propertyClient.ErrHotelNotFound):
			return nil, ErrHotelNotFound
		default:
			s.logger.Error("Start: hotel=%d upstream error: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: failed to start hourly operations: %v", ErrInternal, err)
		}
	}

	s.activateSession(sess, window)

	s.journalEvent(ctx, domain.OpEvent{
		HotelID:     req.HotelID,
		Kind:        domain.EventWindowStarted,
		ActorUserID: req.ActorUserID,
		Mode:        &req.Mode,
		WindowStart: window.Start,
		WindowEnd:   window.End,
	})

	s.logger.Info("Start: hotel=%d window active until %s", req.HotelID, window.End.Format(time.RFC3339))
	return models.FromDomainWindow(window), nil
}

// Stop закрывает почасовое окно отеля.
//
// Идемпотентен: Stop при неактивном окне завершается успешно без сетевого вызова.
// При успехе окно и снимок очищаются безусловно, поллер останавливается.
func (s *Service) Stop(ctx context.Context, hotelID, actorUserID int64) error {
	s.logger.Info("Stop: hotel=%d, user=%d", hotelID, actorUserID)

	sess := s.session(hotelID)
	sess.transition.Lock()

	if !sess.IsActive() {
		sess.transition.Unlock()
		s.logger.Info("Stop: hotel=%d already inactive", hotelID)
		return nil
	}

	if err := s.client.StopHourlyOperations(ctx, hotelID); err != nil {
		sess.transition.Unlock()
		if errors.Is(err, propertyClient.ErrHotelNotFound) {
			return ErrHotelNotFound
		}
		s.logger.Error("Stop: hotel=%d upstream error: %v", hotelID, err)
		return fmt.Errorf("%w: failed to stop hourly operations: %v", ErrInternal, err)
	}

	stopped := s.deactivateSession(ctx, sess, domain.EventWindowStopped, actorUserID)
	sess.transition.Unlock()

	// Поллер останавливается уже без мьютекса: его цикл может как раз ждать
	// transition на пути удалённого истечения окна
	if stopped != nil {
		stopped.Stop()
	}

	s.logger.Info("Stop: hotel=%d window stopped", hotelID)
	return nil
}

// Slots возвращает последний применённый снимок занятости, отрендеренный в полосы
func (s *Service) Slots(ctx context.Context, hotelID int64) (*models.SlotsResponse, error) {
	sess := s.session(hotelID)
	return models.FromDomainSnapshot(sess.Window(), sess.Snapshot()), nil
}

// RefreshSnapshot форсирует внеочередной опрос снимка (после заселения/выселения).
// Для неактивного окна ничего не делает.
func (s *Service) RefreshSnapshot(ctx context.Context, hotelID int64) error {
	sess := s.session(hotelID)
	if !sess.IsActive() {
		return nil
	}
	return s.fetchSnapshot(ctx, sess)
}

// Внутренние методы

func (s *Service) session(hotelID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[hotelID]
	if !ok {
		sess = newSession(hotelID)
		s.sessions[hotelID] = sess
	}
	return sess
}

// activateSession переводит сессию в ACTIVE и запускает поллер, если он не запущен.
// Вызывается строго под sess.transition
func (s *Service) activateSession(sess *session, window domain.HourlyWindow) {
	wasActive := sess.IsActive()
	sess.activate(window)

	if wasActive {
		return
	}

	if s.metrics != nil {
		s.metrics.AddActiveWindows(1)
	}

	p := poller.New(
		fmt.Sprintf("hourly-slots-%d", sess.hotelID),
		s.pollInterval,
		func(ctx context.Context) error { return s.pollOnce(ctx, sess) },
		s.logger,
	)
	sess.poller = p
	p.Start(s.rootCtx)
}

// deactivateSession переводит сессию в INACTIVE, очищает снимок и отцепляет поллер.
// Вызывается строго под sess.transition: проверка активности и смена состояния
// атомарны, поэтому гонка Stop и удалённого истечения окна даёт ровно одно
// событие журнала и один декремент gauge. Возвращённый поллер вызывающий
// останавливает сам, уже отпустив мьютекс
func (s *Service) deactivateSession(ctx context.Context, sess *session, kind domain.OpEventKind, actorUserID int64) *poller.Poller {
	if !sess.IsActive() {
		return nil
	}

	window := sess.Window()
	sess.deactivate()

	if s.metrics != nil {
		s.metrics.AddActiveWindows(-1)
	}

	p := sess.poller
	sess.poller = nil

	s.journalEvent(ctx, domain.OpEvent{
		HotelID:     sess.hotelID,
		Kind:        kind,
		ActorUserID: actorUserID,
		WindowStart: window.Start,
		WindowEnd:   window.End,
	})

	return p
}

// pollOnce один цикл опроса: сверка статуса окна + обновление снимка.
// Ошибки транзиентны: логируются поллером, последний снимок сохраняется.
func (s *Service) pollOnce(ctx context.Context, sess *session) error {
	window, err := s.client.GetHourlyOperations(ctx, sess.hotelID)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncSlotFetch("error")
			s.metrics.IncSlotFetchError("status_fetch")
		}
		return err
	}

	// Окно могло быть закрыто на стороне бэкенда (AUTO режим истёк).
	// TryLock: если transition занят, идёт пользовательский Start/Stop,
	// который сам приведёт состояние в порядок; ждать его из цикла опроса
	// нельзя, Stop дожидается завершения этого самого цикла
	if !window.IsActive() {
		if !sess.transition.TryLock() {
			return nil
		}
		s.logger.Info("pollOnce: hotel=%d window expired remotely", sess.hotelID)
		stopped := s.deactivateSession(ctx, sess, domain.EventWindowExpired, 0)
		sess.transition.Unlock()

		// Собственный цикл: синхронный Stop ждал бы собственного завершения
		if stopped != nil {
			go stopped.Stop()
		}
		return nil
	}

	sess.updateWindow(window)
	return s.fetchSnapshot(ctx, sess)
}

// fetchSnapshot запрашивает снимок слотов и применяет его со stale-защитой:
// номер выдается до запроса, ответ с номером меньше уже применённого отбрасывается
func (s *Service) fetchSnapshot(ctx context.Context, sess *session) error {
	seq := sess.nextSeq()

	rooms, err := s.client.GetHourlySlots(ctx, sess.hotelID)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncSlotFetch("error")
			s.metrics.IncSlotFetchError("slots_fetch")
		}
		return err
	}

	if sess.applySnapshot(seq, rooms, s.timeProvider.Now()) {
		if s.metrics != nil {
			s.metrics.IncSlotFetch("ok")
		}
		return nil
	}

	if s.metrics != nil {
		s.metrics.IncSlotFetch("stale")
		s.metrics.IncStaleDrop(sess.hotelID)
	}
	s.logger.Warn("fetchSnapshot: hotel=%d discarded stale snapshot seq=%d", sess.hotelID, seq)
	return nil
}

// journalEvent пишет событие в журнал операций. Ошибка журнала не фатальна
func (s *Service) journalEvent(ctx context.Context, event domain.OpEvent) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Append(ctx, event); err != nil {
		s.logger.Error("journalEvent: hotel=%d kind=%s: %v", event.HotelID, event.Kind, err)
	}
}
