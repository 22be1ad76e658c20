package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"straysense/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User, p users.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (
			user_id, email, password_hash,
			first_name, last_name, role,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_profiles (
			user_id, phone, address_line1, address_line2, city, country
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID,
		p.Phone,
		p.AddressLine1,
		p.AddressLine2,
		p.City,
		p.Country,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getOne(ctx, `WHERE user_id = $1`, strings.TrimSpace(id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, strings.TrimSpace(email))
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg string) (users.User, error) {
	if arg == "" {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, email, password_hash, first_name, last_name, role, created_at, updated_at
		FROM users `+where, arg)

	var u users.User
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)

	return u, nil
}

func (r *UsersRepo) GetProfile(ctx context.Context, userID string) (users.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, COALESCE(phone,''), COALESCE(address_line1,''),
		       COALESCE(address_line2,''), COALESCE(city,''), COALESCE(country,'')
		FROM user_profiles
		WHERE user_id = $1
	`, userID)

	var p users.Profile
	if err := row.Scan(
		&p.UserID,
		&p.Phone,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.City,
		&p.Country,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Profile{}, users.ErrNotFound
		}
		return users.Profile{}, err
	}

	return p, nil
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, p users.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, phone, address_line1, address_line2, city, country)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			city = EXCLUDED.city,
			country = EXCLUDED.country
	`,
		p.UserID,
		p.Phone,
		p.AddressLine1,
		p.AddressLine2,
		p.City,
		p.Country,
	)
	return err
}
