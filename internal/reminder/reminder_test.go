package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yusufisl4m/pera-assistant/internal/plan"
	"github.com/yusufisl4m/pera-assistant/internal/sched"
	"github.com/yusufisl4m/pera-assistant/internal/storage"
	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

type fakeStore struct {
	storage.Store

	nextID  int64
	tasks   map[int64]storage.Task
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: map[int64]storage.Task{}}
}

func (f *fakeStore) CreateTask(_ context.Context, owner int64, description, timeOfDay string, endDate *time.Time) (int64, error) {
	if f.failAll {
		return 0, errors.New("store down")
	}
	f.nextID++
	f.tasks[f.nextID] = storage.Task{
		ID: f.nextID, Owner: owner, Description: description, TimeOfDay: timeOfDay, EndDate: endDate,
	}
	return f.nextID, nil
}

func (f *fakeStore) ListTasks(_ context.Context, owner int64) ([]storage.Task, error) {
	var out []storage.Task
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.tasks[id]; ok && t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAllTasks(_ context.Context) ([]storage.Task, error) {
	var out []storage.Task
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

// fakeSched records trigger ids and can reject selected ones.
type fakeSched struct {
	installed map[string]string // id -> timeOfDay
	rejected  map[string]bool
	cancelled []string
}

func newFakeSched() *fakeSched {
	return &fakeSched{installed: map[string]string{}, rejected: map[string]bool{}}
}

func (f *fakeSched) Schedule(id, timeOfDay string, _ *time.Time, _ sched.Job) error {
	if f.rejected[id] {
		return errors.New("bad trigger")
	}
	f.installed[id] = timeOfDay
	return nil
}

func (f *fakeSched) Cancel(id string) {
	f.cancelled = append(f.cancelled, id)
	delete(f.installed, id)
}

func endOf(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	return &t
}

func TestConfirmPlan(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	sc := newFakeSched()
	svc := New(st, sc, func(int64, string) {}, logx.Nop())

	jobs := []plan.Job{
		{TimeOfDay: "08:00", Description: "Kahvaltı"},
		{TimeOfDay: "15:30", Description: "Toplantı", EndDate: endOf(2025, time.March, 11)},
	}
	created, failed := svc.ConfirmPlan(context.Background(), 42, jobs)
	if created != 2 || failed != 0 {
		t.Fatalf("ConfirmPlan = (%d, %d), want (2, 0)", created, failed)
	}
	if len(st.tasks) != 2 {
		t.Fatalf("store holds %d tasks, want 2", len(st.tasks))
	}
	// Trigger ids mirror task row ids.
	for id := range st.tasks {
		if _, ok := sc.installed[triggerID(id)]; !ok {
			t.Errorf("no trigger for task %d", id)
		}
	}
}

func TestConfirmPlanRollsBackOnScheduleFailure(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	sc := newFakeSched()
	sc.rejected["2"] = true // second created row
	svc := New(st, sc, func(int64, string) {}, logx.Nop())

	jobs := []plan.Job{
		{TimeOfDay: "08:00", Description: "Kahvaltı"},
		{TimeOfDay: "15:30", Description: "Toplantı"},
		{TimeOfDay: "20:00", Description: "Su İç"},
	}
	created, failed := svc.ConfirmPlan(context.Background(), 42, jobs)
	if created != 2 || failed != 1 {
		t.Fatalf("ConfirmPlan = (%d, %d), want (2, 1)", created, failed)
	}
	// The failed row must have been compensated away.
	if _, ok := st.tasks[2]; ok {
		t.Fatal("task 2 still persisted after trigger install failure")
	}
	if len(st.tasks) != 2 || len(sc.installed) != 2 {
		t.Fatalf("tasks=%d triggers=%d, want 2/2", len(st.tasks), len(sc.installed))
	}
}

func TestConfirmPlanStoreFailure(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	st.failAll = true
	sc := newFakeSched()
	svc := New(st, sc, func(int64, string) {}, logx.Nop())

	created, failed := svc.ConfirmPlan(context.Background(), 42, []plan.Job{{TimeOfDay: "08:00", Description: "x"}})
	if created != 0 || failed != 1 {
		t.Fatalf("ConfirmPlan = (%d, %d), want (0, 1)", created, failed)
	}
	if len(sc.installed) != 0 {
		t.Fatal("trigger installed for unpersisted task")
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	sc := newFakeSched()
	svc := New(st, sc, func(int64, string) {}, logx.Nop())

	id, err := st.CreateTask(context.Background(), 42, "Spor", "10:00", nil)
	if err != nil {
		t.Fatal(err)
	}
	// No trigger installed for this row; Cancel must still be a no-op.
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(st.tasks) != 0 {
		t.Fatal("task row survived delete")
	}
	if err := svc.Delete(context.Background(), id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestRehydrateSkipsMalformedRows(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	ctx := context.Background()
	if _, err := st.CreateTask(ctx, 1, "Kahvaltı", "08:00", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateTask(ctx, 1, "Bozuk", "99:99", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateTask(ctx, 2, "Toplantı", "15:30", endOf(2025, time.March, 11)); err != nil {
		t.Fatal(err)
	}

	// A real scheduler so time validation actually runs.
	sc := sched.New(time.UTC, logx.Nop())
	svc := New(st, sc, func(int64, string) {}, logx.Nop())

	installed, err := svc.Rehydrate(ctx)
	if err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if installed != 2 {
		t.Fatalf("installed = %d, want 2", installed)
	}
	if got := sc.Len(); got != 2 {
		t.Fatalf("scheduler holds %d triggers, want 2", got)
	}

	// Re-running replaces rather than duplicating.
	if _, err := svc.Rehydrate(ctx); err != nil {
		t.Fatalf("second Rehydrate: %v", err)
	}
	if got := sc.Len(); got != 2 {
		t.Fatalf("scheduler holds %d triggers after rerun, want 2", got)
	}
}

func TestDigest(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	sc := newFakeSched()
	svc := New(st, sc, func(int64, string) {}, logx.Nop())
	ctx := context.Background()

	today := time.Date(2025, time.March, 12, 7, 0, 0, 0, time.UTC)
	// Inserted out of time order on purpose.
	mustCreate(t, st, 42, "Akşam Yürüyüşü", "20:00", nil)
	mustCreate(t, st, 42, "Eski Görev", "09:00", endOf(2025, time.March, 11)) // ended yesterday
	mustCreate(t, st, 42, "Kahvaltı", "08:00", endOf(2025, time.March, 12))   // ends today, still valid
	mustCreate(t, st, 99, "Başkasının Görevi", "10:00", nil)

	valid, total, err := svc.Digest(ctx, 42, today)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(valid) != 2 {
		t.Fatalf("valid = %d entries, want 2", len(valid))
	}
	if valid[0].Description != "Kahvaltı" || valid[1].Description != "Akşam Yürüyüşü" {
		t.Errorf("digest order = [%s, %s], want ascending by time", valid[0].Description, valid[1].Description)
	}
}

func TestDigestDistinguishesEmptyCases(t *testing.T) {
	t.Parallel()
	st := newFakeStore()
	svc := New(st, newFakeSched(), func(int64, string) {}, logx.Nop())
	ctx := context.Background()
	today := time.Date(2025, time.March, 12, 7, 0, 0, 0, time.UTC)

	valid, total, err := svc.Digest(ctx, 42, today)
	if err != nil || total != 0 || len(valid) != 0 {
		t.Fatalf("empty store: valid=%d total=%d err=%v", len(valid), total, err)
	}

	mustCreate(t, st, 42, "Bitti", "09:00", endOf(2025, time.March, 1))
	valid, total, err = svc.Digest(ctx, 42, today)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(valid) != 0 {
		t.Fatalf("all expired: valid=%d total=%d, want 0/1", len(valid), total)
	}
}

func mustCreate(t *testing.T, st *fakeStore, owner int64, desc, at string, end *time.Time) {
	t.Helper()
	if _, err := st.CreateTask(context.Background(), owner, desc, at, end); err != nil {
		t.Fatal(err)
	}
}
