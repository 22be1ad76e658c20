package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"straysense/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

const shelterColumns = `
	shelter_id, name, address, city, country,
	COALESCE(phone,''), COALESCE(email,''), created_at, updated_at`

func scanShelter(row interface{ Scan(...any) error }) (shelters.Shelter, error) {
	var s shelters.Shelter
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.City,
		&s.Country,
		&s.Phone,
		&s.Email,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (r *SheltersRepo) Create(ctx context.Context, s shelters.Shelter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shelters (
			shelter_id, name, address, city, country, phone, email,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID, s.Name, s.Address, s.City, s.Country, s.Phone, s.Email,
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *SheltersRepo) Update(ctx context.Context, s shelters.Shelter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shelters SET
			name = $2, address = $3, city = $4, country = $5,
			phone = $6, email = $7, updated_at = $8
		WHERE shelter_id = $1
	`,
		s.ID, s.Name, s.Address, s.City, s.Country, s.Phone, s.Email,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shelters.ErrNotFound
	}
	return nil
}

func (r *SheltersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shelters WHERE shelter_id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shelters.ErrNotFound
	}
	return nil
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return shelters.Shelter{}, shelters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+shelterColumns+` FROM shelters WHERE shelter_id = $1`, id)

	s, err := scanShelter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}
	return s, nil
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+shelterColumns+` FROM shelters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		s, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
