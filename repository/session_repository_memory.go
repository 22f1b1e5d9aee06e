package repository

import (
	"context"
	"sync"
	"time"

	"github.com/nestandloomco/intentra/domain"
)

// SessionRepositoryMemory is an in-memory implementation of
// SessionRepository. Sessions idle for longer than ttl are treated as gone.
type SessionRepositoryMemory struct {
	mu   sync.Mutex
	data map[string]*domain.Session
	ttl  time.Duration
	now  func() time.Time
}

// NewSessionRepositoryMemory creates a new in-memory session repository.
func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		data: make(map[string]*domain.Session),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Save stores a copy of the session.
func (r *SessionRepositoryMemory) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepositoryMemory) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(session) {
		delete(r.data, id)
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, id)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (r *SessionRepositoryMemory) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.data {
		if r.expired(session) {
			delete(r.data, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepositoryMemory) expired(session *domain.Session) bool {
	return r.ttl > 0 && r.now().Sub(session.UpdatedAt) >= r.ttl
}
