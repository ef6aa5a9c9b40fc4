package poller

import (
	"context"
	"sync"
	"time"
)

// FetchFunc функция одного цикла опроса
// Ошибка трактуется как временная: логируется, но цикл опроса не прерывается
type FetchFunc func(ctx context.Context) error

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Poller периодически вызывает fetch с фиксированным интервалом.
//
// Жизненный цикл: Start запускает фоновый цикл (немедленный fetch, затем по тикеру),
// Stop детерминированно его останавливает и дожидается завершения. Повторный Start
// без Stop и Stop без Start являются no-op.
//
// Fetch выполняется синхронно внутри цикла, поэтому перекрывающихся запросов
// не бывает: тики, пришедшие за время долгого fetch, схлопываются в один.
type Poller struct {
	name     string
	interval time.Duration
	fetch    FetchFunc
	log      Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New создает новый поллер. Паники нет: некорректный interval нормализуется в Start.
func New(name string, interval time.Duration, fetch FetchFunc, log Logger) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		fetch:    fetch,
		log:      log,
	}
}

// Start запускает цикл опроса. Если цикл уже запущен, ничего не делает.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	interval := p.interval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	p.log.Info("poller %s: started, interval=%s", p.name, interval)

	go p.run(runCtx, interval, done)
}

// Stop останавливает цикл опроса и дожидается его завершения.
// После возврата из Stop новых вызовов fetch не будет.
// Если цикл не запущен, ничего не делает.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	p.log.Info("poller %s: stopped", p.name)
}

// Running возвращает true, если цикл опроса активен
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	p.fetchOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchOnce(ctx)
		}
	}
}

func (p *Poller) fetchOnce(ctx context.Context) {
	// Stop мог сработать между тиком и вызовом
	if ctx.Err() != nil {
		return
	}

	if err := p.fetch(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.log.Warn("poller %s: fetch failed: %v", p.name, err)
	}
}
