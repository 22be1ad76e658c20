package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"straysense/internal/domain/animals"
)

type AnimalsRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalsRepo() *AnimalsRepo {
	return &AnimalsRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if matchesFilter(a, filter) {
			out = append(out, a)
		}
	}

	// Orden estable por created_at desc, igual que el adapter de Postgres.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func matchesFilter(a animals.Animal, f animals.ListFilter) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Species != "" && !strings.EqualFold(a.Species, f.Species) {
		return false
	}
	if f.Breed != "" && !strings.EqualFold(a.Breed, f.Breed) {
		return false
	}
	if f.AgeMin != nil && (a.Age == nil || *a.Age < *f.AgeMin) {
		return false
	}
	if f.AgeMax != nil && (a.Age == nil || *a.Age > *f.AgeMax) {
		return false
	}
	return true
}

func (r *AnimalsRepo) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.ShelterID != nil && *a.ShelterID == shelterID {
			n++
		}
	}
	return n, nil
}

// Count lo usa el snapshot de stats.
func (r *AnimalsRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
