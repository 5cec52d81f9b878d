// Package notifier delivers reminder texts to chat targets asynchronously.
// Delivery is fire-and-forget: one attempt per occurrence, failures are
// logged and never retried.
package notifier

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

var (
	ErrQueueFull = errors.New("notifier queue full")
	ErrStopped   = errors.New("notifier stopped")
)

// Sender is the transport half the notifier writes to.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

type Config struct {
	Workers    int
	QueueSize  int
	RatePerSec int
}

type job struct {
	chatID int64
	text   string
}

// Service is an async delivery pipeline: queue + worker pool + rate limit.
// Safe for concurrent use.
type Service struct {
	mu sync.Mutex

	log    logx.Logger
	sender Sender

	cfg     Config
	limiter *rate.Limiter

	accepting bool
	queue     chan job
	// sendWG tracks in-flight Deliver calls so Stop never closes the queue
	// under a pending enqueue.
	sendWG sync.WaitGroup

	runCtx    context.Context
	runCancel context.CancelFunc
	workerWG  sync.WaitGroup
}

func New(cfg Config, sender Sender, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	s := &Service{sender: sender, log: log}
	s.applyLocked(cfg)
	return s
}

// Apply updates the rate limit live. Workers/queue size take effect on the
// next Start.
func (s *Service) Apply(cfg Config) {
	s.mu.Lock()
	s.applyLocked(cfg)
	s.mu.Unlock()
}

func (s *Service) applyLocked(cfg Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 3
	}
	s.cfg = cfg
	// Token bucket: burst = rate per sec, so short spikes don't block too hard.
	s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec)
}

func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.queue != nil {
		s.mu.Unlock()
		return
	}
	s.queue = make(chan job, s.cfg.QueueSize)
	s.accepting = true
	s.runCtx, s.runCancel = context.WithCancel(ctx)
	workers := s.cfg.Workers
	queue := s.queue
	runCtx := s.runCtx
	s.mu.Unlock()

	s.workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		idx := i
		go func() {
			defer s.workerWG.Done()
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("panic in notifier worker", logx.Int("worker", idx), logx.Any("panic", r), logx.String("stack", string(debug.Stack())))
				}
			}()
			s.workerLoop(runCtx, queue)
		}()
	}
}

// Stop stops intake and drains the queue best-effort until ctx deadline.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	q := s.queue
	cancel := s.runCancel
	if q == nil {
		s.mu.Unlock()
		return
	}
	s.accepting = false
	s.queue = nil
	s.runCtx, s.runCancel = nil, nil
	s.mu.Unlock()

	// Deliver calls that grabbed the queue before intake closed may still be
	// about to send; wait them out before closing.
	s.sendWG.Wait()
	close(q)

	done := make(chan struct{})
	go func() {
		s.workerWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if cancel != nil {
			cancel()
		}
		<-done
	}
	if cancel != nil {
		cancel()
	}
}

// Deliver enqueues one text for the given chat. It never blocks; a full queue
// drops the occurrence with an error.
func (s *Service) Deliver(chatID int64, text string) error {
	s.mu.Lock()
	if !s.accepting || s.queue == nil {
		s.mu.Unlock()
		return ErrStopped
	}
	q := s.queue
	s.sendWG.Add(1)
	s.mu.Unlock()
	defer s.sendWG.Done()

	select {
	case q <- job{chatID: chatID, text: text}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Service) workerLoop(runCtx context.Context, queue <-chan job) {
	for j := range queue {
		select {
		case <-runCtx.Done():
			return
		default:
		}

		s.mu.Lock()
		lim := s.limiter
		s.mu.Unlock()
		if lim != nil {
			if err := lim.Wait(runCtx); err != nil {
				return
			}
		}

		callCtx, cancel := context.WithTimeout(runCtx, 10*time.Second)
		err := s.sender.SendText(callCtx, j.chatID, j.text)
		cancel()
		if err != nil {
			// At-most-once: the user simply misses this occurrence.
			s.log.Warn("delivery failed", logx.Int64("chat_id", j.chatID), logx.Err(err))
		}
	}
}
