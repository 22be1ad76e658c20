package vaccinations

import (
	"context"
	"testing"
	"time"
)

type testRepo struct {
	types map[string]VaccineType
	byID  map[string]Vaccination
}

func newTestRepo() *testRepo {
	return &testRepo{
		types: map[string]VaccineType{},
		byID:  map[string]Vaccination{},
	}
}

func (r *testRepo) CreateType(ctx context.Context, t VaccineType) error {
	r.types[t.ID] = t
	return nil
}

func (r *testRepo) UpdateType(ctx context.Context, t VaccineType) error {
	if _, ok := r.types[t.ID]; !ok {
		return ErrNotFound
	}
	r.types[t.ID] = t
	return nil
}

func (r *testRepo) DeleteType(ctx context.Context, id string) error {
	if _, ok := r.types[id]; !ok {
		return ErrNotFound
	}
	delete(r.types, id)
	return nil
}

func (r *testRepo) GetType(ctx context.Context, id string) (VaccineType, error) {
	t, ok := r.types[id]
	if !ok {
		return VaccineType{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) ListTypes(ctx context.Context) ([]VaccineType, error) {
	out := make([]VaccineType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) Schedule(ctx context.Context, v Vaccination) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Complete(ctx context.Context, id string, date time.Time) error {
	v, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	v.CompletedDate = &date
	r.byID[id] = v
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Vaccination, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccination{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) List(ctx context.Context) ([]Vaccination, error) {
	out := make([]Vaccination, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID string) ([]Vaccination, error) {
	out := make([]Vaccination, 0)
	for _, v := range r.byID {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestService_Schedule_StartsPending(t *testing.T) {
	svc := NewService(newTestRepo())

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	v, err := svc.Schedule(context.Background(), "animal-1", "vaccine-1", date)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}

	if !v.Pending() {
		t.Fatalf("expected scheduled vaccination to be pending")
	}
	if v.ScheduledDate != date {
		t.Fatalf("expected scheduled date kept, got %v", v.ScheduledDate)
	}
}

func TestService_Schedule_MissingFields(t *testing.T) {
	svc := NewService(newTestRepo())
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Schedule(context.Background(), "", "vaccine-1", date); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Schedule(context.Background(), "animal-1", "", date); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Schedule(context.Background(), "animal-1", "vaccine-1", time.Time{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Complete_StampsDateAndClearsPending(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	v, err := svc.Schedule(context.Background(), "animal-1", "vaccine-1",
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}

	done, err := svc.Complete(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}

	if done.Pending() {
		t.Fatalf("expected completed vaccination to not be pending")
	}
	// La fecha se trunca a día.
	if !done.CompletedDate.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date truncated to day, got %v", done.CompletedDate)
	}
}

func TestService_Complete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Complete(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_UpdateType_RequiresName(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.CreateType(context.Background(), "rabia", "anual")
	if err != nil {
		t.Fatalf("CreateType error: %v", err)
	}

	if _, err := svc.UpdateType(context.Background(), created.ID, "  ", "x"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	updated, err := svc.UpdateType(context.Background(), created.ID, "rabia 2", "")
	if err != nil {
		t.Fatalf("UpdateType error: %v", err)
	}
	if updated.Name != "rabia 2" {
		t.Fatalf("expected name updated, got %s", updated.Name)
	}
}
