package adoptions

import (
	"context"

	"straysense/internal/domain/animals"
)

type Repository interface {
	// Submit ejecuta el alta atómica: bajo una sola transacción con lock
	// sobre la fila del animal, verifica que el animal exista y esté
	// available, que no haya otra solicitud pending para (user, animal),
	// inserta la adopción y pasa el animal a pending_adoption.
	// Devuelve ErrAnimalNotFound / ErrAnimalNotAvailable / ErrDuplicateRequest.
	Submit(ctx context.Context, a Adoption) error

	GetByID(ctx context.Context, id string) (Adoption, error)

	// Update persiste status/gates/fecha de aprobación. Si animalStatus
	// no es vacío, el status del animal cambia en la misma transacción.
	Update(ctx context.Context, a Adoption, animalStatus animals.Status) error

	ListByUser(ctx context.Context, userID string) ([]Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
