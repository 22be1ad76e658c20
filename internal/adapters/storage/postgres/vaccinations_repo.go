package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"straysense/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) CreateType(ctx context.Context, t vaccinations.VaccineType) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccine_types (vaccine_id, name, description)
		VALUES ($1,$2,$3)
	`, t.ID, t.Name, t.Description)
	return err
}

func (r *VaccinationsRepo) UpdateType(ctx context.Context, t vaccinations.VaccineType) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccine_types SET name = $2, description = $3 WHERE vaccine_id = $1
	`, t.ID, t.Name, t.Description)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

func (r *VaccinationsRepo) DeleteType(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccine_types WHERE vaccine_id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

func (r *VaccinationsRepo) GetType(ctx context.Context, id string) (vaccinations.VaccineType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccinations.VaccineType{}, vaccinations.ErrNotFound
	}

	var t vaccinations.VaccineType
	err := r.db.QueryRowContext(ctx, `
		SELECT vaccine_id, name, COALESCE(description,'')
		FROM vaccine_types WHERE vaccine_id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.VaccineType{}, vaccinations.ErrNotFound
		}
		return vaccinations.VaccineType{}, err
	}
	return t, nil
}

func (r *VaccinationsRepo) ListTypes(ctx context.Context) ([]vaccinations.VaccineType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vaccine_id, name, COALESCE(description,'')
		FROM vaccine_types ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.VaccineType, 0)
	for rows.Next() {
		var t vaccinations.VaccineType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) Schedule(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (vaccination_id, animal_id, vaccine_id, scheduled_date, completed_date)
		VALUES ($1,$2,$3,$4,$5)
	`, v.ID, v.AnimalID, v.VaccineID, v.ScheduledDate, v.CompletedDate)
	return err
}

func (r *VaccinationsRepo) Complete(ctx context.Context, id string, date time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations SET completed_date = $2 WHERE vaccination_id = $1
	`, id, date)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

const vaccinationListQuery = `
	SELECT v.vaccination_id, v.animal_id, v.vaccine_id,
	       v.scheduled_date, v.completed_date,
	       a.name, t.name
	FROM vaccinations v
	JOIN animals a ON a.animal_id = v.animal_id
	JOIN vaccine_types t ON t.vaccine_id = v.vaccine_id`

func scanVaccination(row interface{ Scan(...any) error }) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	err := row.Scan(
		&v.ID,
		&v.AnimalID,
		&v.VaccineID,
		&v.ScheduledDate,
		&v.CompletedDate,
		&v.AnimalName,
		&v.VaccineName,
	)
	return v, err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, vaccinationListQuery+` WHERE v.vaccination_id = $1`, id)

	v, err := scanVaccination(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.Vaccination{}, vaccinations.ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) List(ctx context.Context) ([]vaccinations.Vaccination, error) {
	return r.list(ctx, vaccinationListQuery+` ORDER BY v.scheduled_date`)
}

func (r *VaccinationsRepo) ListByAnimal(ctx context.Context, animalID string) ([]vaccinations.Vaccination, error) {
	return r.list(ctx, vaccinationListQuery+`
		WHERE v.animal_id = $1
		ORDER BY v.scheduled_date`, animalID)
}

func (r *VaccinationsRepo) list(ctx context.Context, query string, args ...any) ([]vaccinations.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
