package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, filter ListFilter) ([]Animal, error)
	CountByShelter(ctx context.Context, shelterID string) (int, error)
}

type ListFilter struct {
	// Status vacío = todos (vista admin). El listado público filtra available.
	Status  Status
	Species string
	Breed   string
	AgeMin  *int
	AgeMax  *int
}
