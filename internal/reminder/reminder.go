// Package reminder ties the durable task store to the trigger scheduler:
// confirming drafts, deleting tasks, rebuilding triggers after a restart and
// computing the morning digest.
package reminder

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/yusufisl4m/pera-assistant/internal/plan"
	"github.com/yusufisl4m/pera-assistant/internal/sched"
	"github.com/yusufisl4m/pera-assistant/internal/storage"
	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

// NotifyFunc delivers one reminder occurrence to its owner. Best-effort; the
// scheduler never retries an occurrence.
type NotifyFunc func(owner int64, description string)

type Service struct {
	store  storage.Store
	sched  sched.Scheduler
	notify NotifyFunc
	log    logx.Logger
	now    func() time.Time
}

func New(store storage.Store, scheduler sched.Scheduler, notify NotifyFunc, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{store: store, sched: scheduler, notify: notify, log: log, now: time.Now}
}

// ConfirmPlan promotes draft jobs to persisted tasks with live triggers.
// Each job is persisted and scheduled independently: a row whose trigger
// fails to install is deleted again (compensating), counted as failed, and
// siblings continue. Returns (created, failed).
func (s *Service) ConfirmPlan(ctx context.Context, owner int64, jobs []plan.Job) (int, int) {
	created, failed := 0, 0
	for _, j := range jobs {
		id, err := s.store.CreateTask(ctx, owner, j.Description, j.TimeOfDay, j.EndDate)
		if err != nil {
			s.log.Error("task persist failed", logx.Int64("owner", owner), logx.String("task", j.Description), logx.Err(err))
			failed++
			continue
		}
		desc := j.Description
		if err := s.sched.Schedule(triggerID(id), j.TimeOfDay, j.EndDate, func(ctx context.Context) {
			s.notify(owner, desc)
		}); err != nil {
			s.log.Error("trigger install failed; rolling back task",
				logx.Int64("task_id", id), logx.Err(err))
			if derr := s.store.DeleteTask(ctx, id); derr != nil {
				s.log.Error("rollback delete failed", logx.Int64("task_id", id), logx.Err(derr))
			}
			failed++
			continue
		}
		created++
	}
	return created, failed
}

// Delete cancels the trigger (no-op if absent) and removes the task row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.sched.Cancel(triggerID(id))
	return s.store.DeleteTask(ctx, id)
}

// List returns all tasks of one owner, in creation order.
func (s *Service) List(ctx context.Context, owner int64) ([]storage.Task, error) {
	return s.store.ListTasks(ctx, owner)
}

// Rehydrate reinstalls triggers for every persisted task. Replace-on-conflict
// semantics make re-running it safe. A malformed row is skipped and logged,
// never aborting the loop. Returns the number of triggers installed.
func (s *Service) Rehydrate(ctx context.Context) (int, error) {
	tasks, err := s.store.ListAllTasks(ctx)
	if err != nil {
		return 0, err
	}
	installed := 0
	for _, t := range tasks {
		t := t
		err := s.sched.Schedule(triggerID(t.ID), t.TimeOfDay, t.EndDate, func(ctx context.Context) {
			s.notify(t.Owner, t.Description)
		})
		if err != nil {
			s.log.Warn("rehydration skipped row",
				logx.Int64("task_id", t.ID), logx.String("time", t.TimeOfDay), logx.Err(err))
			continue
		}
		installed++
	}
	s.log.Info("rehydration complete", logx.Int("installed", installed), logx.Int("rows", len(tasks)))
	return installed, nil
}

// Digest returns the owner's tasks still valid today, sorted ascending by
// time of day, along with the owner's total task count so callers can tell
// "nothing valid today" apart from "no tasks at all".
func (s *Service) Digest(ctx context.Context, owner int64, today time.Time) ([]storage.Task, int, error) {
	tasks, err := s.store.ListTasks(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var valid []storage.Task
	for _, t := range tasks {
		if t.EndDate == nil || !t.EndDate.Before(day) {
			valid = append(valid, t)
		}
	}
	// Zero-padded 24-hour strings sort correctly lexicographically.
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].TimeOfDay < valid[j].TimeOfDay })
	return valid, len(tasks), nil
}

func triggerID(id int64) string { return strconv.FormatInt(id, 10) }
