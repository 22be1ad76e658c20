package sessions

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	// Delete es idempotente: borrar una sesión inexistente no es error.
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, id string, at time.Time) error
}
