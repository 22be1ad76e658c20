package vaccinations

import (
	"context"
	"time"
)

type Repository interface {
	CreateType(ctx context.Context, t VaccineType) error
	UpdateType(ctx context.Context, t VaccineType) error
	DeleteType(ctx context.Context, id string) error
	GetType(ctx context.Context, id string) (VaccineType, error)
	ListTypes(ctx context.Context) ([]VaccineType, error)

	Schedule(ctx context.Context, v Vaccination) error
	Complete(ctx context.Context, id string, date time.Time) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	List(ctx context.Context) ([]Vaccination, error)
	ListByAnimal(ctx context.Context, animalID string) ([]Vaccination, error)
}
