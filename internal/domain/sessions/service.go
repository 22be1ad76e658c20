package sessions

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"straysense/internal/domain/users"
	"straysense/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("invalid or expired session")
	ErrBadAdminPassword   = errors.New("invalid admin password")
)

// UserDirectory es lo mínimo que el login necesita del módulo de usuarios.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (users.User, error)
}

type Service struct {
	repo   Repository
	users  UserDirectory
	signer auth.TokenSigner
	codec  auth.TokenVerifier

	ttl           time.Duration
	adminPassword string
	now           func() time.Time
}

func NewService(repo Repository, dir UserDirectory, signer auth.TokenSigner, verifier auth.TokenVerifier, ttl time.Duration, adminPassword string) *Service {
	return &Service{
		repo:          repo,
		users:         dir,
		signer:        signer,
		codec:         verifier,
		ttl:           ttl,
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

type LoginResult struct {
	Token     string
	SessionID string
	User      users.User
}

// Login verifica credenciales, inserta la fila de sesión y emite la
// credencial firmada que embebe user_id + email + session_id.
func (s *Service) Login(ctx context.Context, email, password, ip, userAgent string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{
		ID:           uuid.NewString(),
		UserID:       u.ID,
		Token:        randomToken(),
		IPAddress:    ip,
		UserAgent:    userAgent,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
		LastActiveAt: now,
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	token, err := s.signer.Sign(auth.Claims{
		UserID:    u.ID,
		Email:     u.Email,
		SessionID: sess.ID,
	}, s.ttl)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, SessionID: sess.ID, User: u}, nil
}

// ValidateCredential decodifica la credencial y exige que la fila de sesión
// exista y no esté vencida. Una sesión vencida equivale a una ausente.
func (s *Service) ValidateCredential(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.codec.Verify(ctx, token)
	if err != nil {
		return auth.Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.SessionID) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	sess, err := s.repo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return auth.Claims{}, ErrSessionExpired
	}

	now := s.now()
	if !sess.ExpiresAt.After(now) {
		return auth.Claims{}, ErrSessionExpired
	}

	// best-effort: no bloquea el request si falla
	_ = s.repo.Touch(ctx, sess.ID, now)

	return claims, nil
}

// Logout borra la fila de sesión. Idempotente: una credencial cuya sesión
// ya no existe también devuelve éxito.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.codec.Verify(ctx, token)
	if err != nil {
		return ErrInvalidToken
	}
	if strings.TrimSpace(claims.SessionID) == "" {
		return ErrInvalidToken
	}
	return s.repo.Delete(ctx, claims.SessionID)
}

// AdminVerify valida el password de administración y emite una credencial
// {role: admin} sin sesión asociada.
func (s *Service) AdminVerify(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrBadAdminPassword
	}
	return s.signer.Sign(auth.Claims{Role: auth.RoleAdmin}, s.ttl)
}

func randomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
