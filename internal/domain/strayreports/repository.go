package strayreports

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	Update(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	ListByUser(ctx context.Context, userID string) ([]Report, error)
	// List devuelve todos los reportes, enriquecidos con el nombre del reportante.
	List(ctx context.Context) ([]Report, error)
}
