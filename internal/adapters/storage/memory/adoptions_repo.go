package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"straysense/internal/domain/adoptions"
	"straysense/internal/domain/animals"
)

type AdoptionsRepo struct {
	mu      sync.RWMutex
	byID    map[string]adoptions.Adoption
	animals animals.Repository
	users   *UsersRepo
}

// NewAdoptionsRepo recibe el repo de animales para replicar la atomicidad
// del alta: el mutex propio serializa los Submit, que en Postgres resuelve
// el lock de fila.
func NewAdoptionsRepo(animalsRepo animals.Repository, users *UsersRepo) *AdoptionsRepo {
	return &AdoptionsRepo{
		byID:    make(map[string]adoptions.Adoption),
		animals: animalsRepo,
		users:   users,
	}
}

func (r *AdoptionsRepo) Submit(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}

	animal, err := r.animals.GetByID(ctx, a.AnimalID)
	if err != nil {
		return adoptions.ErrAnimalNotFound
	}
	if animal.Status != animals.StatusAvailable {
		return adoptions.ErrAnimalNotAvailable
	}

	for _, existing := range r.byID {
		if existing.UserID == a.UserID && existing.AnimalID == a.AnimalID &&
			existing.Status == adoptions.StatusPending {
			return adoptions.ErrDuplicateRequest
		}
	}

	r.byID[a.ID] = a

	animal.Status = animals.StatusPendingAdoption
	animal.UpdatedAt = a.ApplicationDate
	return r.animals.Update(ctx, animal)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption, animalStatus animals.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return adoptions.ErrNotFound
	}
	r.byID[a.ID] = a

	if animalStatus == "" {
		return nil
	}

	animal, err := r.animals.GetByID(ctx, a.AnimalID)
	if err != nil {
		return err
	}
	animal.Status = animalStatus
	animal.UpdatedAt = time.Now()
	return r.animals.Update(ctx, animal)
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	r.enrich(ctx, out)
	sortAdoptions(out)

	return out, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	out := make([]adoptions.Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	r.mu.RUnlock()

	r.enrich(ctx, out)
	sortAdoptions(out)

	return out, nil
}

// enrich replica los joins del adapter de Postgres.
func (r *AdoptionsRepo) enrich(ctx context.Context, list []adoptions.Adoption) {
	for i := range list {
		if animal, err := r.animals.GetByID(ctx, list[i].AnimalID); err == nil {
			list[i].AnimalName = animal.Name
			list[i].AnimalSpecies = animal.Species
			list[i].AnimalBreed = animal.Breed
			list[i].AnimalImagePath = animal.ImagePath
		}
		if u, err := r.users.GetByID(ctx, list[i].UserID); err == nil {
			list[i].UserFirstName = u.FirstName
			list[i].UserLastName = u.LastName
		}
	}
}

func sortAdoptions(list []adoptions.Adoption) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ApplicationDate.After(list[j].ApplicationDate)
	})
}

// CountPending lo usa el snapshot de stats.
func (r *AdoptionsRepo) CountPending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.Status == adoptions.StatusPending {
			n++
		}
	}
	return n
}
