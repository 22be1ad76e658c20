package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"straysense/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	animal_id, name, species, COALESCE(breed,''), age, gender,
	COALESCE(health_status,''), neutered, shelter_id,
	COALESCE(image_path,''), status, created_at, updated_at`

func scanAnimal(row interface{ Scan(...any) error }) (animals.Animal, error) {
	var a animals.Animal
	var gender, status string
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Breed,
		&a.Age,
		&gender,
		&a.HealthStatus,
		&a.Neutered,
		&a.ShelterID,
		&a.ImagePath,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	a.Gender = animals.Gender(gender)
	a.Status = animals.Status(status)
	return a, nil
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			animal_id, name, species, breed, age, gender,
			health_status, neutered, shelter_id, image_path, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		string(a.Gender),
		a.HealthStatus,
		a.Neutered,
		a.ShelterID,
		a.ImagePath,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET
			name = $2, species = $3, breed = $4, age = $5, gender = $6,
			health_status = $7, neutered = $8, shelter_id = $9,
			image_path = $10, status = $11, updated_at = $12
		WHERE animal_id = $1
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		string(a.Gender),
		a.HealthStatus,
		a.Neutered,
		a.ShelterID,
		a.ImagePath,
		string(a.Status),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE animal_id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE animal_id = $1`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

// List arma el WHERE dinámicamente según el filtro; campos vacíos no filtran.
func (r *AnimalsRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.Species != "" {
		add("LOWER(species) = LOWER($%d)", filter.Species)
	}
	if filter.Breed != "" {
		add("LOWER(breed) = LOWER($%d)", filter.Breed)
	}
	if filter.AgeMin != nil {
		add("age >= $%d", *filter.AgeMin)
	}
	if filter.AgeMax != nil {
		add("age <= $%d", *filter.AgeMax)
	}

	query := `SELECT ` + animalColumns + ` FROM animals`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM animals WHERE shelter_id = $1`, shelterID,
	).Scan(&n)
	return n, err
}
