package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"straysense/internal/domain/adoptions"
	"straysense/internal/domain/animals"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Submit corre todo el alta bajo una transacción. El SELECT ... FOR UPDATE
// sobre la fila del animal serializa solicitudes concurrentes: la segunda
// espera el lock y al despertar ve el status ya cambiado.
func (r *AdoptionsRepo) Submit(ctx context.Context, a adoptions.Adoption) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM animals WHERE animal_id = $1 FOR UPDATE`, a.AnimalID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.ErrAnimalNotFound
		}
		return err
	}
	if animals.Status(status) != animals.StatusAvailable {
		return adoptions.ErrAnimalNotAvailable
	}

	var pending int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM adoptions
		WHERE user_id = $1 AND animal_id = $2 AND status = 'pending'
	`, a.UserID, a.AnimalID).Scan(&pending)
	if err != nil {
		return err
	}
	if pending > 0 {
		return adoptions.ErrDuplicateRequest
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO adoptions (
			adoption_id, user_id, animal_id, status,
			home_check_passed, fee_paid, contract_signed,
			application_date, approval_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.UserID,
		a.AnimalID,
		string(a.Status),
		a.HomeCheckPassed,
		a.FeePaid,
		a.ContractSigned,
		a.ApplicationDate,
		a.ApprovalDate,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE animals SET status = $2, updated_at = $3 WHERE animal_id = $1
	`, a.AnimalID, string(animals.StatusPendingAdoption), a.ApplicationDate)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT adoption_id, user_id, animal_id, status,
		       home_check_passed, fee_paid, contract_signed,
		       application_date, approval_date
		FROM adoptions
		WHERE adoption_id = $1
	`, id)

	var a adoptions.Adoption
	var status string
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.AnimalID,
		&status,
		&a.HomeCheckPassed,
		&a.FeePaid,
		&a.ContractSigned,
		&a.ApplicationDate,
		&a.ApprovalDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	a.Status = adoptions.Status(status)

	return a, nil
}

// Update persiste la decisión; si animalStatus viene, el animal cambia en
// la misma transacción.
func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption, animalStatus animals.Status) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE adoptions SET
			status = $2, home_check_passed = $3, fee_paid = $4,
			contract_signed = $5, approval_date = $6
		WHERE adoption_id = $1
	`,
		a.ID,
		string(a.Status),
		a.HomeCheckPassed,
		a.FeePaid,
		a.ContractSigned,
		a.ApprovalDate,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return adoptions.ErrNotFound
	}

	if animalStatus != "" {
		_, err = tx.ExecContext(ctx, `
			UPDATE animals SET status = $2, updated_at = now() WHERE animal_id = $1
		`, a.AnimalID, string(animalStatus))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const adoptionListQuery = `
	SELECT a.adoption_id, a.user_id, a.animal_id, a.status,
	       a.home_check_passed, a.fee_paid, a.contract_signed,
	       a.application_date, a.approval_date,
	       an.name, an.species, COALESCE(an.breed,''), COALESCE(an.image_path,''),
	       u.first_name, u.last_name
	FROM adoptions a
	JOIN animals an ON an.animal_id = a.animal_id
	JOIN users u ON u.user_id = a.user_id`

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, adoptionListQuery+`
		WHERE a.user_id = $1
		ORDER BY a.application_date DESC`, userID)
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	return r.list(ctx, adoptionListQuery+`
		ORDER BY a.application_date DESC`)
}

func (r *AdoptionsRepo) list(ctx context.Context, query string, args ...any) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		var a adoptions.Adoption
		var status string
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.AnimalID,
			&status,
			&a.HomeCheckPassed,
			&a.FeePaid,
			&a.ContractSigned,
			&a.ApplicationDate,
			&a.ApprovalDate,
			&a.AnimalName,
			&a.AnimalSpecies,
			&a.AnimalBreed,
			&a.AnimalImagePath,
			&a.UserFirstName,
			&a.UserLastName,
		)
		if err != nil {
			return nil, err
		}
		a.Status = adoptions.Status(status)
		out = append(out, a)
	}
	return out, rows.Err()
}
