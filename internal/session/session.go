// Package session tracks which record, if any, is being created or
// edited in the console, one slot per collection kind.  The state is
// transient UI bookkeeping and is deliberately never persisted: on
// restart every modal is closed.
package session

import (
	"sync"

	"github.com/poweracademy/academy-server/internal/model"
)

// Session is the edit state for one collection kind.  Open with a nil
// Target means a new record is being composed; Open with a Target
// means that record is being edited.
type Session struct {
	Open   bool   `json:"open"`
	Target *int64 `json:"target,omitempty"`
}

// Intent says what a save should do: create a fresh record or replace
// the one at TargetID.  The decision is carried explicitly here and
// never inferred from an id field inside the submitted record.
type Intent struct {
	Update   bool
	TargetID int64
}

// Intent returns the save intent for an open session.  The boolean is
// false when no session is open, in which case a save has nothing to
// target.
func (s Session) Intent() (Intent, bool) {
	if !s.Open {
		return Intent{}, false
	}
	if s.Target == nil {
		return Intent{}, true
	}
	return Intent{Update: true, TargetID: *s.Target}, true
}

// Manager holds the per-kind edit sessions behind a mutex; the console
// serializes user actions but HTTP requests may not be.
type Manager struct {
	mu       sync.Mutex
	sessions map[model.Kind]Session
}

// NewManager returns a Manager with every session closed.
func NewManager() *Manager {
	return &Manager{sessions: make(map[model.Kind]Session)}
}

// OpenCreate opens kind's session for composing a new record,
// clearing any previous target.
func (m *Manager) OpenCreate(kind model.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[kind] = Session{Open: true}
}

// OpenEdit opens kind's session targeting the record with id.
func (m *Manager) OpenEdit(kind model.Kind, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[kind] = Session{Open: true, Target: &id}
}

// Close resets kind's session; used on both cancel and save.
func (m *Manager) Close(kind model.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[kind] = Session{}
}

// Current returns kind's session state.
func (m *Manager) Current(kind model.Kind) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[kind]
}
