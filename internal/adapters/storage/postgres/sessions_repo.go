package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"straysense/internal/domain/sessions"
)

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			session_id, user_id, session_token,
			ip_address, user_agent,
			created_at, expires_at, last_active_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.ID,
		s.UserID,
		s.Token,
		s.IPAddress,
		s.UserAgent,
		s.CreatedAt,
		s.ExpiresAt,
		s.LastActiveAt,
	)
	return err
}

func (r *SessionsRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sessions.Session{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT session_id, user_id, session_token,
		       COALESCE(ip_address,''), COALESCE(user_agent,''),
		       created_at, expires_at, last_active_at
		FROM sessions
		WHERE session_id = $1
	`, id)

	var s sessions.Session
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Token,
		&s.IPAddress,
		&s.UserAgent,
		&s.CreatedAt,
		&s.ExpiresAt,
		&s.LastActiveAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sessions.Session{}, ErrNotFound
		}
		return sessions.Session{}, err
	}

	return s, nil
}

// Delete es idempotente: 0 filas afectadas no es error.
func (r *SessionsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = $1`, id)
	return err
}

func (r *SessionsRepo) Touch(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET last_active_at = $2 WHERE session_id = $1
	`, id, at)
	return err
}
