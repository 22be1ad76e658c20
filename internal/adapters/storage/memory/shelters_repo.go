package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"straysense/internal/domain/shelters"
)

type SheltersRepo struct {
	mu   sync.RWMutex
	byID map[string]shelters.Shelter
}

func NewSheltersRepo() *SheltersRepo {
	return &SheltersRepo{
		byID: make(map[string]shelters.Shelter),
	}
}

func (r *SheltersRepo) Create(ctx context.Context, s shelters.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("shelter id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("shelter already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *SheltersRepo) Update(ctx context.Context, s shelters.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return shelters.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *SheltersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return shelters.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return s, nil
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shelters.Shelter, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// Count lo usa el snapshot de stats.
func (r *SheltersRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
