package vaccinations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// --- Vaccine types ---

func (s *Service) CreateType(ctx context.Context, name, description string) (VaccineType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return VaccineType{}, ErrInvalidInput
	}

	t := VaccineType{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		return VaccineType{}, err
	}
	return t, nil
}

func (s *Service) UpdateType(ctx context.Context, id, name, description string) (VaccineType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return VaccineType{}, ErrInvalidInput
	}

	t, err := s.repo.GetType(ctx, id)
	if err != nil {
		return VaccineType{}, err
	}

	t.Name = name
	t.Description = strings.TrimSpace(description)
	if err := s.repo.UpdateType(ctx, t); err != nil {
		return VaccineType{}, err
	}
	return t, nil
}

func (s *Service) DeleteType(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteType(ctx, id)
}

func (s *Service) ListTypes(ctx context.Context) ([]VaccineType, error) {
	return s.repo.ListTypes(ctx)
}

// --- Vaccinations ---

func (s *Service) Schedule(ctx context.Context, animalID, vaccineID string, scheduledDate time.Time) (Vaccination, error) {
	animalID = strings.TrimSpace(animalID)
	vaccineID = strings.TrimSpace(vaccineID)
	if animalID == "" || vaccineID == "" || scheduledDate.IsZero() {
		return Vaccination{}, ErrInvalidInput
	}

	v := Vaccination{
		ID:            uuid.NewString(),
		AnimalID:      animalID,
		VaccineID:     vaccineID,
		ScheduledDate: scheduledDate,
	}
	if err := s.repo.Schedule(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

// Complete estampa la fecha de hoy. Una vacunación completada deja de
// contar como pendiente.
func (s *Service) Complete(ctx context.Context, id string) (Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccination{}, ErrInvalidInput
	}

	today := s.now().Truncate(24 * time.Hour)
	if err := s.repo.Complete(ctx, id, today); err != nil {
		return Vaccination{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Vaccination, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Vaccination, error) {
	return s.repo.ListByAnimal(ctx, animalID)
}
