// Package session tracks per-user plan-entry state: idle, awaiting raw plan
// text, or awaiting confirmation of a staged draft. One session per user;
// starting a new entry silently discards any prior unconfirmed draft.
package session

import (
	"sync"

	"github.com/yusufisl4m/pera-assistant/internal/plan"
)

type State int

const (
	Idle State = iota
	AwaitingText
	AwaitingConfirmation
)

func (s State) String() string {
	switch s {
	case AwaitingText:
		return "awaiting_text"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	default:
		return "idle"
	}
}

// Session is a snapshot of one user's entry state. The draft is only
// meaningful in AwaitingConfirmation.
type Session struct {
	State State
	Draft []plan.Job
}

// Sessions is the per-user session registry. Implementations must be safe for
// concurrent use; the in-memory one below can be swapped for a distributed
// store if the bot ever runs in more than one process.
type Sessions interface {
	Get(userID int64) Session
	// BeginEntry moves the user to AwaitingText, discarding any draft.
	BeginEntry(userID int64)
	// StageDraft stores a non-empty draft and moves to AwaitingConfirmation.
	StageDraft(userID int64, draft []plan.Job)
	// TakeDraft atomically removes the staged draft and resets to Idle.
	// ok is false when the user was not awaiting confirmation.
	TakeDraft(userID int64) (draft []plan.Job, ok bool)
	// Reset drops any state back to Idle.
	Reset(userID int64)
}

type registry struct {
	mu sync.Mutex
	m  map[int64]Session
}

func NewRegistry() Sessions {
	return &registry{m: map[int64]Session{}}
}

func (r *registry) Get(userID int64) Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m[userID]
}

func (r *registry) BeginEntry(userID int64) {
	r.mu.Lock()
	r.m[userID] = Session{State: AwaitingText}
	r.mu.Unlock()
}

func (r *registry) StageDraft(userID int64, draft []plan.Job) {
	if len(draft) == 0 {
		r.Reset(userID)
		return
	}
	r.mu.Lock()
	r.m[userID] = Session{State: AwaitingConfirmation, Draft: draft}
	r.mu.Unlock()
}

func (r *registry) TakeDraft(userID int64) ([]plan.Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, exists := r.m[userID]
	if !exists || s.State != AwaitingConfirmation {
		return nil, false
	}
	delete(r.m, userID)
	return s.Draft, true
}

func (r *registry) Reset(userID int64) {
	r.mu.Lock()
	delete(r.m, userID)
	r.mu.Unlock()
}
