package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"straysense/internal/domain/animals"
	"straysense/internal/domain/users"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("adoption not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAnimalNotFound     = errors.New("animal not found")
	ErrAnimalNotAvailable = errors.New("animal is not available for adoption")
	ErrDuplicateRequest   = errors.New("pending adoption request already exists")
)

// UserDirectory es lo mínimo que el alta necesita del módulo de usuarios.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

type Service struct {
	repo  Repository
	users UserDirectory
	now   func() time.Time
}

func NewService(repo Repository, dir UserDirectory) *Service {
	return &Service{
		repo:  repo,
		users: dir,
		now:   time.Now,
	}
}

// Submit registra la solicitud de adopción. La existencia del usuario se
// chequea antes; la disponibilidad del animal y el duplicado pending se
// resuelven dentro de la transacción del repositorio, así dos solicitudes
// concurrentes por el mismo animal no pueden pasar ambas.
func (s *Service) Submit(ctx context.Context, userID, animalID string) (Adoption, error) {
	userID = strings.TrimSpace(userID)
	animalID = strings.TrimSpace(animalID)
	if userID == "" || animalID == "" {
		return Adoption{}, ErrInvalidInput
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return Adoption{}, ErrUserNotFound
	}

	a := Adoption{
		ID:              uuid.NewString(),
		UserID:          userID,
		AnimalID:        animalID,
		Status:          StatusPending,
		ApplicationDate: s.now(),
	}

	if err := s.repo.Submit(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

type UpdateStatusInput struct {
	Status          string
	HomeCheckPassed *bool
	FeePaid         *bool
	ContractSigned  *bool
}

// UpdateStatus aplica la decisión del admin. approved estampa la fecha y
// pasa el animal a adopted. rejected no revierte el status del animal:
// el animal queda en pending_adoption hasta que el admin lo re-publique.
func (s *Service) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (Adoption, error) {
	status := Status(strings.TrimSpace(in.Status))
	if !ValidStatus(status) {
		return Adoption{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}

	a.Status = status
	if in.HomeCheckPassed != nil {
		a.HomeCheckPassed = *in.HomeCheckPassed
	}
	if in.FeePaid != nil {
		a.FeePaid = *in.FeePaid
	}
	if in.ContractSigned != nil {
		a.ContractSigned = *in.ContractSigned
	}

	var animalStatus animals.Status
	if status == StatusApproved {
		now := s.now()
		a.ApprovalDate = &now
		animalStatus = animals.StatusAdopted
	}

	if err := s.repo.Update(ctx, a, animalStatus); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Adoption, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}
