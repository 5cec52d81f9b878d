// Package sched owns the live set of recurring reminder triggers. Each
// trigger fires once per day at a wall-clock time, optionally ceasing past an
// inclusive end date. Triggers are keyed by a stable id; Schedule replaces,
// Cancel is a no-op on unknown ids.
package sched

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

// Job is the payload delivery callback for one trigger occurrence.
type Job func(ctx context.Context)

// Scheduler is the trigger contract consumed by the reminder service.
type Scheduler interface {
	Schedule(id, timeOfDay string, until *time.Time, job Job) error
	Cancel(id string)
}

type Service struct {
	mu      sync.Mutex
	log     logx.Logger
	loc     *time.Location
	c       *cron.Cron
	entries map[string]cron.EntryID

	runCtx    context.Context
	runCancel context.CancelFunc
}

func New(loc *time.Location, log logx.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		log:     log,
		loc:     loc,
		c:       cron.New(cron.WithLocation(loc)),
		entries: map[string]cron.EntryID{},
	}
}

func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCtx != nil {
		return
	}
	s.runCtx, s.runCancel = context.WithCancel(ctx)
	s.c.Start()
	s.log.Info("scheduler started", logx.String("tz", s.loc.String()), logx.Int("triggers", len(s.entries)))
}

func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	cancel := s.runCancel
	c := s.c
	s.runCtx, s.runCancel = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c == nil {
		return
	}
	// Wait for in-flight jobs, bounded by ctx.
	select {
	case <-c.Stop().Done():
	case <-ctx.Done():
	}
	s.log.Info("scheduler stopped")
}

// Schedule installs (or replaces, idempotent on id) a daily trigger at
// timeOfDay. A trigger with an end date stops firing for any day strictly
// after it; the spent entry is removed lazily at the first skipped firing.
func (s *Service) Schedule(id, timeOfDay string, until *time.Time, job Job) error {
	hour, minute, err := parseHHMM(timeOfDay)
	if err != nil {
		return err
	}
	spec := fmt.Sprintf("%d %d * * *", minute, hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[id]; ok {
		s.c.Remove(old)
		delete(s.entries, id)
	}

	var expiry time.Time
	if until != nil {
		expiry = *until
	}
	entryID, err := s.c.AddFunc(spec, func() {
		s.mu.Lock()
		ctx := s.runCtx
		s.mu.Unlock()
		if ctx == nil {
			return
		}
		if !expiry.IsZero() && time.Now().In(s.loc).After(expiry) {
			s.log.Debug("trigger expired; removing", logx.String("id", id), logx.Time("until", expiry))
			s.Cancel(id)
			return
		}
		job(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", id, err)
	}
	s.entries[id] = entryID
	s.log.Debug("trigger installed", logx.String("id", id), logx.String("at", timeOfDay))
	return nil
}

// Cancel removes the trigger with the given id. Unknown ids are a no-op.
func (s *Service) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, ok := s.entries[id]
	if !ok {
		return
	}
	s.c.Remove(entryID)
	delete(s.entries, id)
	s.log.Debug("trigger cancelled", logx.String("id", id))
}

// Len reports the number of installed triggers.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func parseHHMM(v string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", v)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", v)
	}
	return hour, minute, nil
}
