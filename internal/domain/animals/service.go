package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

// ReportRegistry marca un reporte de calle como procesado cuando
// se promueve a un animal registrado.
type ReportRegistry interface {
	MarkProcessed(ctx context.Context, reportID, animalID string) error
}

type Service struct {
	repo    Repository
	reports ReportRegistry
	now     func() time.Time
}

func NewService(repo Repository, reports ReportRegistry) *Service {
	return &Service{
		repo:    repo,
		reports: reports,
		now:     time.Now,
	}
}

type CreateInput struct {
	Name         string
	Species      string
	Breed        string
	Age          *int
	Gender       string
	HealthStatus string
	Neutered     bool
	ShelterID    *string
	ImagePath    string
	Status       string

	// ReportID opcional: si viene, el animal se creó a partir de un
	// reporte de calle y se registra la referencia inversa.
	ReportID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Animal{}, ErrInvalidInput
	}

	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusAvailable
	}
	if !ValidStatus(status) {
		return Animal{}, ErrInvalidInput
	}

	gender := Gender(strings.TrimSpace(in.Gender))
	if gender == "" {
		gender = GenderUnknown
	}

	now := s.now()
	a := Animal{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Species:      strings.TrimSpace(in.Species),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          in.Age,
		Gender:       gender,
		HealthStatus: strings.TrimSpace(in.HealthStatus),
		Neutered:     in.Neutered,
		ShelterID:    in.ShelterID,
		ImagePath:    strings.TrimSpace(in.ImagePath),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}

	if reportID := strings.TrimSpace(in.ReportID); reportID != "" {
		if err := s.reports.MarkProcessed(ctx, reportID, a.ID); err != nil {
			return Animal{}, err
		}
	}

	return a, nil
}

type UpdateInput struct {
	Name         *string
	Species      *string
	Breed        *string
	Age          *int
	Gender       *string
	HealthStatus *string
	Neutered     *bool
	ShelterID    *string
	ClearShelter bool
	ImagePath    *string
	Status       *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		a.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		a.Age = in.Age
	}
	if in.Gender != nil {
		a.Gender = Gender(strings.TrimSpace(*in.Gender))
	}
	if in.HealthStatus != nil {
		a.HealthStatus = strings.TrimSpace(*in.HealthStatus)
	}
	if in.Neutered != nil {
		a.Neutered = *in.Neutered
	}
	if in.ClearShelter {
		a.ShelterID = nil
	} else if in.ShelterID != nil {
		a.ShelterID = in.ShelterID
	}
	if in.ImagePath != nil {
		a.ImagePath = strings.TrimSpace(*in.ImagePath)
	}
	if in.Status != nil {
		status := Status(strings.TrimSpace(*in.Status))
		if !ValidStatus(status) {
			return Animal{}, ErrInvalidInput
		}
		a.Status = status
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAvailable es el listado público: solo animales adoptables.
func (s *Service) ListAvailable(ctx context.Context, filter ListFilter) ([]Animal, error) {
	filter.Status = StatusAvailable
	return s.repo.List(ctx, filter)
}

// ListAll es la vista admin, sin filtro de status.
func (s *Service) ListAll(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx, ListFilter{})
}

// CountByShelter lo usa el módulo de refugios para el guard de borrado.
func (s *Service) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	return s.repo.CountByShelter(ctx, shelterID)
}
