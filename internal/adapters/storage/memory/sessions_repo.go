package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"straysense/internal/domain/sessions"
)

var ErrNotFound = errors.New("not found")

type SessionsRepo struct {
	mu   sync.RWMutex
	byID map[string]sessions.Session
}

func NewSessionsRepo() *SessionsRepo {
	return &SessionsRepo{
		byID: make(map[string]sessions.Session),
	}
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *SessionsRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sessions.Session{}, ErrNotFound
	}
	return s, nil
}

// Delete es idempotente.
func (r *SessionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *SessionsRepo) Touch(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	s.LastActiveAt = at
	r.byID[id] = s
	return nil
}
