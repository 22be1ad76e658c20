package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"straysense/internal/domain/animals"
	"straysense/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	mu      sync.RWMutex
	types   map[string]vaccinations.VaccineType
	byID    map[string]vaccinations.Vaccination
	animals animals.Repository
}

func NewVaccinationsRepo(animalsRepo animals.Repository) *VaccinationsRepo {
	return &VaccinationsRepo{
		types:   make(map[string]vaccinations.VaccineType),
		byID:    make(map[string]vaccinations.Vaccination),
		animals: animalsRepo,
	}
}

func (r *VaccinationsRepo) CreateType(ctx context.Context, t vaccinations.VaccineType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("vaccine id required")
	}
	if _, exists := r.types[t.ID]; exists {
		return errors.New("vaccine type already exists")
	}
	r.types[t.ID] = t
	return nil
}

func (r *VaccinationsRepo) UpdateType(ctx context.Context, t vaccinations.VaccineType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[t.ID]; !exists {
		return vaccinations.ErrNotFound
	}
	r.types[t.ID] = t
	return nil
}

func (r *VaccinationsRepo) DeleteType(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[id]; !exists {
		return vaccinations.ErrNotFound
	}
	delete(r.types, id)
	return nil
}

func (r *VaccinationsRepo) GetType(ctx context.Context, id string) (vaccinations.VaccineType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return vaccinations.VaccineType{}, vaccinations.ErrNotFound
	}
	return t, nil
}

func (r *VaccinationsRepo) ListTypes(ctx context.Context) ([]vaccinations.VaccineType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccinations.VaccineType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *VaccinationsRepo) Schedule(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccination id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vaccination already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VaccinationsRepo) Complete(ctx context.Context, id string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccinations.ErrNotFound
	}
	v.CompletedDate = &date
	r.byID[id] = v
	return nil
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	v, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}

	one := []vaccinations.Vaccination{v}
	r.enrich(ctx, one)
	return one[0], nil
}

func (r *VaccinationsRepo) List(ctx context.Context) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	out := make([]vaccinations.Vaccination, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	r.mu.RUnlock()

	r.enrich(ctx, out)
	sortVaccinations(out)

	return out, nil
}

func (r *VaccinationsRepo) ListByAnimal(ctx context.Context, animalID string) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	out := make([]vaccinations.Vaccination, 0)
	for _, v := range r.byID {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	r.mu.RUnlock()

	r.enrich(ctx, out)
	sortVaccinations(out)

	return out, nil
}

// enrich replica los joins del adapter de Postgres.
func (r *VaccinationsRepo) enrich(ctx context.Context, list []vaccinations.Vaccination) {
	for i := range list {
		if a, err := r.animals.GetByID(ctx, list[i].AnimalID); err == nil {
			list[i].AnimalName = a.Name
		}
		r.mu.RLock()
		if t, ok := r.types[list[i].VaccineID]; ok {
			list[i].VaccineName = t.Name
		}
		r.mu.RUnlock()
	}
}

func sortVaccinations(list []vaccinations.Vaccination) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ScheduledDate.Before(list[j].ScheduledDate)
	})
}

// CountPending lo usa el snapshot de stats.
func (r *VaccinationsRepo) CountPending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, v := range r.byID {
		if v.Pending() {
			n++
		}
	}
	return n
}
