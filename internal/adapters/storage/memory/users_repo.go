package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"straysense/internal/domain/users"
)

type UsersRepo struct {
	mu       sync.RWMutex
	byID     map[string]users.User
	byEmail  map[string]string
	profiles map[string]users.Profile
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byID:     make(map[string]users.User),
		byEmail:  make(map[string]string),
		profiles: make(map[string]users.Profile),
	}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User, p users.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.profiles[u.ID] = p
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UsersRepo) GetProfile(ctx context.Context, userID string) (users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, p users.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.UserID] = p
	return nil
}

// Count lo usa el snapshot de stats.
func (r *UsersRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
