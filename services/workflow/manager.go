package workflow

import (
	"context"
	"sync"
	"time"

	"infinity8/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionManager hands out workflow controllers keyed by session id. Live
// controllers stay in-process so each viewing context is owned by exactly
// one instance; snapshots are written through to the store so a session
// survives a restart (and expires by TTL, as booking sessions do).
type SessionManager struct {
	mu    sync.Mutex
	live  map[string]*liveSession
	store SnapshotStore
	deps  Deps
	opts  Options
	ttl   time.Duration
}

type liveSession struct {
	controller *Controller
	lastSeen   time.Time
}

func NewSessionManager(store SnapshotStore, deps Deps, opts Options, ttl time.Duration) *SessionManager {
	return &SessionManager{
		live:  make(map[string]*liveSession),
		store: store,
		deps:  deps,
		opts:  opts,
		ttl:   ttl,
	}
}

// Create opens a new workflow session for the space, loads today's
// availability, and persists the initial snapshot. The availability error,
// if any, is non-fatal: the session exists with a failed grid and the user
// can re-select a date.
func (m *SessionManager) Create(ctx context.Context, space models.Space) (string, *Controller, error) {
	sessionID := uuid.New().String()
	controller := NewController(space, m.deps, m.opts)

	if err := controller.Refresh(ctx); err != nil {
		zap.L().Warn("initial availability load failed",
			zap.Int64("spaceID", space.ID), zap.Error(err))
	}

	m.mu.Lock()
	m.evictStaleLocked()
	m.live[sessionID] = &liveSession{controller: controller, lastSeen: time.Now()}
	m.mu.Unlock()

	if err := m.persist(ctx, sessionID, controller); err != nil {
		return "", nil, err
	}
	return sessionID, controller, nil
}

// Get returns the live controller for the session, restoring it from the
// snapshot store when this process has not seen it yet.
func (m *SessionManager) Get(ctx context.Context, sessionID string) (*Controller, error) {
	m.mu.Lock()
	if entry, ok := m.live[sessionID]; ok {
		entry.lastSeen = time.Now()
		controller := entry.controller
		m.mu.Unlock()
		return controller, nil
	}
	m.mu.Unlock()

	snap, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	controller := Restore(*snap, m.deps, m.opts.Clock)

	m.mu.Lock()
	// Another request may have restored it first; keep the winner.
	if entry, ok := m.live[sessionID]; ok {
		entry.lastSeen = time.Now()
		controller = entry.controller
	} else {
		m.evictStaleLocked()
		m.live[sessionID] = &liveSession{controller: controller, lastSeen: time.Now()}
	}
	m.mu.Unlock()
	return controller, nil
}

// Save writes the session's current snapshot through to the store.
func (m *SessionManager) Save(ctx context.Context, sessionID string, controller *Controller) error {
	return m.persist(ctx, sessionID, controller)
}

// Delete ends the session explicitly.
func (m *SessionManager) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.live, sessionID)
	m.mu.Unlock()
	return m.store.Delete(ctx, sessionID)
}

func (m *SessionManager) persist(ctx context.Context, sessionID string, controller *Controller) error {
	if err := m.store.Save(ctx, sessionID, controller.Snapshot()); err != nil {
		zap.L().Error("failed to persist workflow session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// evictStaleLocked drops live entries idle past the TTL. Their snapshots
// expire independently in the store.
func (m *SessionManager) evictStaleLocked() {
	cutoff := time.Now().Add(-m.ttl)
	for id, entry := range m.live {
		if entry.lastSeen.Before(cutoff) {
			delete(m.live, id)
		}
	}
}
