package strayreports

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("report not found")
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

type SubmitInput struct {
	Description     string
	AnimalType      string
	AnimalSize      string
	VisibleInjuries string
	Province        string
	City            string
	Latitude        *float64
	Longitude       *float64
}

func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Report, error) {
	if strings.TrimSpace(userID) == "" {
		return Report{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return Report{}, ErrInvalidInput
	}

	r := Report{
		ID:              uuid.NewString(),
		UserID:          userID,
		Description:     strings.TrimSpace(in.Description),
		AnimalType:      strings.TrimSpace(in.AnimalType),
		AnimalSize:      strings.TrimSpace(in.AnimalSize),
		VisibleInjuries: strings.TrimSpace(in.VisibleInjuries),
		Province:        strings.TrimSpace(in.Province),
		City:            strings.TrimSpace(in.City),
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Status:          StatusPending,
		ReportDate:      s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Report, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

// SetStatus aplica la decisión del admin. accepted estampa la fecha;
// volver a pending/rejected la limpia.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Report, error) {
	if !ValidStatus(status) {
		return Report{}, ErrInvalidInput
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}

	r.Status = status
	if status == StatusAccepted {
		now := s.now()
		r.AcceptedDate = &now
	} else {
		r.AcceptedDate = nil
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return Report{}, err
	}
	return r, nil
}

// MarkProcessed registra que el reporte fue promovido al animal indicado.
// Lo invoca el módulo de animales al crear desde un report_id.
func (s *Service) MarkProcessed(ctx context.Context, reportID, animalID string) error {
	r, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	r.ProcessedAnimalID = &animalID
	return s.repo.Update(ctx, r)
}
