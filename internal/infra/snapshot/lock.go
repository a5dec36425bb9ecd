package snapshot

import (
	"context"
	"log/slog"
	"sync"

	"course-sectioning/internal/usecase/sectioning"
)

type LockMode int

const (
	LockShared LockMode = iota + 1
	LockExclusive
)

type offeringState struct {
	readers int
	writer  string
	held    bool
	// wake is closed and replaced on every release.
	wake chan struct{}
}

// LockManager grants per-offering locks: any number of shared holders or one
// exclusive holder. Acquisition blocks until granted or ctx is done.
type LockManager struct {
	mu     sync.Mutex
	states map[int64]*offeringState
}

func NewLockManager() *LockManager {
	return &LockManager{states: make(map[int64]*offeringState)}
}

func (m *LockManager) state(offeringID int64) *offeringState {
	st, ok := m.states[offeringID]
	if !ok {
		st = &offeringState{wake: make(chan struct{})}
		m.states[offeringID] = st
	}
	return st
}

// IsLocked reports whether the offering is held exclusively.
func (m *LockManager) IsLocked(offeringID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[offeringID]
	return ok && st.held
}

// Owner returns the owner of an exclusive lock.
func (m *LockManager) Owner(offeringID int64) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[offeringID]
	if !ok || !st.held {
		return "", false
	}
	return st.writer, true
}

func (m *LockManager) Lock(ctx context.Context, offeringID int64, mode LockMode, owner string) (sectioning.Lock, error) {
	for {
		m.mu.Lock()
		st := m.state(offeringID)
		if l := m.grant(st, offeringID, mode, owner); l != nil {
			m.mu.Unlock()
			return l, nil
		}
		wake := st.wake
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wake:
		}
	}
}

// TryLock grants the lock only if it is free right now. It never waits.
func (m *LockManager) TryLock(offeringID int64, mode LockMode, owner string) (sectioning.Lock, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.state(offeringID)
	l := m.grant(st, offeringID, mode, owner)
	if l == nil {
		if !st.held && st.readers == 0 {
			delete(m.states, offeringID)
		}
		return nil, false
	}
	return l, true
}

// grant takes the lock when the mode is compatible with the current holders.
// Callers hold mu.
func (m *LockManager) grant(st *offeringState, offeringID int64, mode LockMode, owner string) *offeringLock {
	switch {
	case mode == LockExclusive && !st.held && st.readers == 0:
		st.held, st.writer = true, owner
		slog.Debug("offering locked", "offering_id", offeringID, "owner", owner)
	case mode == LockShared && !st.held:
		st.readers++
	default:
		return nil
	}
	return m.newLock(offeringID, mode, owner)
}

func (m *LockManager) release(offeringID int64, mode LockMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.state(offeringID)
	switch mode {
	case LockExclusive:
		st.held, st.writer = false, ""
	case LockShared:
		if st.readers > 0 {
			st.readers--
		}
	}
	close(st.wake)
	st.wake = make(chan struct{})
	if !st.held && st.readers == 0 {
		delete(m.states, offeringID)
	}
}

func (m *LockManager) newLock(offeringID int64, mode LockMode, owner string) *offeringLock {
	return &offeringLock{manager: m, offeringID: offeringID, mode: mode, owner: owner}
}

type offeringLock struct {
	manager    *LockManager
	offeringID int64
	mode       LockMode
	owner      string
	once       sync.Once
}

func (l *offeringLock) Release() {
	l.once.Do(func() {
		l.manager.release(l.offeringID, l.mode)
		if l.mode == LockExclusive {
			slog.Debug("offering released", "offering_id", l.offeringID, "owner", l.owner)
		}
	})
}
