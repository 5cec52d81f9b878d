package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Task is a persisted, user-owned reminder definition.
// Rows are never mutated in place; edits are delete+recreate.
type Task struct {
	ID          int64
	Owner       int64
	Description string
	// TimeOfDay is a zero-padded 24-hour "HH:MM" wall-clock time.
	TimeOfDay string
	// EndDate, when set, is the inclusive end of the task's validity window
	// (normalized to 23:59:59 of that calendar day).
	EndDate *time.Time
}

// Store is the persistence contract consumed by the reminder core.
type Store interface {
	CreateTask(ctx context.Context, owner int64, description, timeOfDay string, endDate *time.Time) (int64, error)
	ListTasks(ctx context.Context, owner int64) ([]Task, error)
	// ListAllTasks is used only by startup rehydration.
	ListAllTasks(ctx context.Context) ([]Task, error)
	DeleteTask(ctx context.Context, id int64) error

	GetLanguage(ctx context.Context, userID int64) (string, error)
	SetLanguage(ctx context.Context, userID int64, lang string) error

	Close() error
}

// Config configures the sqlite store.
type Config struct {
	Path        string
	BusyTimeout time.Duration // 0 means default
}
