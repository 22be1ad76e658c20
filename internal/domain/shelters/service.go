package shelters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("shelter not found")
	ErrHasAnimals   = errors.New("shelter has associated animals")
)

// AnimalCounter es lo que el guard de borrado necesita del módulo de animales.
type AnimalCounter interface {
	CountByShelter(ctx context.Context, shelterID string) (int, error)
}

type Service struct {
	repo    Repository
	animals AnimalCounter
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalCounter) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
	}
}

type Input struct {
	Name    string
	Address string
	City    string
	Country string
	Phone   string
	Email   string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.Country) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Shelter, error) {
	if err := in.validate(); err != nil {
		return Shelter{}, err
	}

	now := s.now()
	sh := Shelter{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Country:   strings.TrimSpace(in.Country),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Shelter, error) {
	if err := in.validate(); err != nil {
		return Shelter{}, err
	}

	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Shelter{}, err
	}

	sh.Name = strings.TrimSpace(in.Name)
	sh.Address = strings.TrimSpace(in.Address)
	sh.City = strings.TrimSpace(in.City)
	sh.Country = strings.TrimSpace(in.Country)
	sh.Phone = strings.TrimSpace(in.Phone)
	sh.Email = strings.TrimSpace(in.Email)
	sh.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}

// Delete falla con ErrHasAnimals mientras algún animal referencie al refugio.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	n, err := s.animals.CountByShelter(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasAnimals
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Shelter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}
