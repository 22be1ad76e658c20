package sessions

import (
	"context"
	"testing"
	"time"

	"straysense/internal/adapters/auth/jwtauth"
	"straysense/internal/domain/users"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo + user directory
// -------------------------

type testRepo struct {
	byID map[string]Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Session{}}
}

func (r *testRepo) Create(ctx context.Context, s Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, ErrSessionExpired
	}
	return s, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Touch(ctx context.Context, id string, at time.Time) error {
	s, ok := r.byID[id]
	if !ok {
		return ErrSessionExpired
	}
	s.LastActiveAt = at
	r.byID[id] = s
	return nil
}

type testDirectory struct {
	byEmail map[string]users.User
}

func (d *testDirectory) GetByEmail(ctx context.Context, email string) (users.User, error) {
	u, ok := d.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)

	dir := &testDirectory{byEmail: map[string]users.User{
		"ana@example.com": {
			ID:           "user-1",
			Email:        "ana@example.com",
			PasswordHash: string(hash),
			FirstName:    "Ana",
		},
	}}

	repo := newTestRepo()
	codec := jwtauth.New(testSecret)
	svc := NewService(repo, dir, codec, codec, 24*time.Hour, "admin-pass")
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Login_CreatesSessionAndCredential(t *testing.T) {
	svc, repo := newTestService(t)

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.Login(context.Background(), "Ana@Example.com", "pass1234", "1.2.3.4", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.NotEmpty(t, res.SessionID)
	require.Equal(t, "user-1", res.User.ID)

	sess, ok := repo.byID[res.SessionID]
	require.True(t, ok, "expected session row")
	require.Equal(t, "user-1", sess.UserID)
	require.Equal(t, "1.2.3.4", sess.IPAddress)
	require.Equal(t, now.Add(24*time.Hour), sess.ExpiresAt)
	require.Len(t, sess.Token, 64) // 32 bytes hex

	claims, err := svc.ValidateCredential(context.Background(), res.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, res.SessionID, claims.SessionID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong", "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "pass1234", "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ValidateCredential_ExpiredSession(t *testing.T) {
	svc, _ := newTestService(t)

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.Login(context.Background(), "ana@example.com", "pass1234", "", "")
	require.NoError(t, err)

	// La fila sigue existiendo, pero ya venció.
	svc.now = func() time.Time { return now.Add(25 * time.Hour) }

	_, err = svc.ValidateCredential(context.Background(), res.Token)
	require.Error(t, err)
}

func TestService_ValidateCredential_DeletedSession(t *testing.T) {
	svc, repo := newTestService(t)

	res, err := svc.Login(context.Background(), "ana@example.com", "pass1234", "", "")
	require.NoError(t, err)

	delete(repo.byID, res.SessionID)

	_, err = svc.ValidateCredential(context.Background(), res.Token)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestService_ValidateCredential_AdminTokenHasNoSession(t *testing.T) {
	svc, _ := newTestService(t)

	token, err := svc.AdminVerify(context.Background(), "admin-pass")
	require.NoError(t, err)

	// Una credencial de admin no trae session_id: el gate de sesión la rechaza.
	_, err = svc.ValidateCredential(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Logout_Idempotent(t *testing.T) {
	svc, repo := newTestService(t)

	res, err := svc.Login(context.Background(), "ana@example.com", "pass1234", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.Token))
	require.Empty(t, repo.byID)

	// Segundo logout con la misma credencial: también éxito.
	require.NoError(t, svc.Logout(context.Background(), res.Token))
}

func TestService_AdminVerify(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdminVerify(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrBadAdminPassword)

	token, err := svc.AdminVerify(context.Background(), "admin-pass")
	require.NoError(t, err)

	codec := jwtauth.New(testSecret)
	claims, err := codec.Verify(context.Background(), token)
	require.NoError(t, err)
	require.True(t, claims.IsAdmin())
}
