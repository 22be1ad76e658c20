package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"straysense/internal/domain/strayreports"
)

type StrayReportsRepo struct {
	mu    sync.RWMutex
	byID  map[string]strayreports.Report
	users *UsersRepo
}

// NewStrayReportsRepo recibe el repo de usuarios para enriquecer los
// listados admin con el nombre del reportante, como hace el join en Postgres.
func NewStrayReportsRepo(users *UsersRepo) *StrayReportsRepo {
	return &StrayReportsRepo{
		byID:  make(map[string]strayreports.Report),
		users: users,
	}
}

func (r *StrayReportsRepo) Create(ctx context.Context, rep strayreports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *StrayReportsRepo) Update(ctx context.Context, rep strayreports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rep.ID]; !exists {
		return strayreports.ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *StrayReportsRepo) GetByID(ctx context.Context, id string) (strayreports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return strayreports.Report{}, strayreports.ErrNotFound
	}
	return rep, nil
}

func (r *StrayReportsRepo) ListByUser(ctx context.Context, userID string) ([]strayreports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]strayreports.Report, 0)
	for _, rep := range r.byID {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	sortReports(out)

	return out, nil
}

func (r *StrayReportsRepo) List(ctx context.Context) ([]strayreports.Report, error) {
	r.mu.RLock()
	reps := make([]strayreports.Report, 0, len(r.byID))
	for _, rep := range r.byID {
		reps = append(reps, rep)
	}
	r.mu.RUnlock()

	for i := range reps {
		if u, err := r.users.GetByID(ctx, reps[i].UserID); err == nil {
			reps[i].ReporterFirstName = u.FirstName
			reps[i].ReporterLastName = u.LastName
		}
	}
	sortReports(reps)

	return reps, nil
}

func sortReports(reps []strayreports.Report) {
	sort.Slice(reps, func(i, j int) bool {
		return reps[i].ReportDate.After(reps[j].ReportDate)
	})
}

// CountPending lo usa el snapshot de stats.
func (r *StrayReportsRepo) CountPending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rep := range r.byID {
		if rep.Status == strayreports.StatusPending {
			n++
		}
	}
	return n
}
