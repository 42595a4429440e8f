// Package session keeps a registry of independent games keyed by uuid, for
// front ends that drive several boards at once.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// ErrSessionNotFound is returned for an id the manager does not hold.
var ErrSessionNotFound = errors.New("session not found")

// Session is one game plus its bookkeeping. The game is only reachable
// through Manager.Do, which serializes access to it.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu   sync.Mutex
	game *game.Game
}

// Manager maps session ids to sessions. It is safe for concurrent use;
// each session has its own lock, so work on one never waits for another.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// New starts a session at the standard starting position.
func (m *Manager) New() *Session {
	return m.add(game.New())
}

// NewFromFEN starts a session from a FEN position. Nothing is registered
// if the FEN is invalid.
func (m *Manager) NewFromFEN(fen string) (*Session, error) {
	g, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *game.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// IDs returns the ids of all sessions in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.sessions)
	m.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Do runs fn on the session's game while holding the session lock and
// records the time. fn's error is returned as is.
func (m *Manager) Do(id string, fn func(*game.Game) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = fn(s.game)
	s.UpdatedAt = time.Now()
	return err
}

// LastUpdate returns when the session's game was last handed to Do.
func (s *Session) LastUpdate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UpdatedAt
}
