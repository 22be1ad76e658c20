package users

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type testRepo struct {
	byID     map[string]User
	byEmail  map[string]string
	profiles map[string]Profile
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:     map[string]User{},
		byEmail:  map[string]string{},
		profiles: map[string]Profile{},
	}
}

func (r *testRepo) Create(ctx context.Context, u User, p Profile) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.profiles[u.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *testRepo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) UpdateProfile(ctx context.Context, p Profile) error {
	r.profiles[p.UserID] = p
	return nil
}

func TestService_Signup_HashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Email:     "  Ana@Example.COM ",
		Password:  "pass1234",
		FirstName: "Ana",
		LastName:  "Gomez",
	})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	if u.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %s", u.Email)
	}
	if u.Role != RoleAdopter {
		t.Fatalf("expected default role adopter, got %s", u.Role)
	}
	if u.PasswordHash == "pass1234" {
		t.Fatalf("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass1234")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestService_Signup_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := SignupInput{
		Email:     "ana@example.com",
		Password:  "pass1234",
		FirstName: "Ana",
		LastName:  "Gomez",
	}
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("Signup #1 error: %v", err)
	}

	if _, err := svc.Signup(context.Background(), in); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Signup_MissingFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []SignupInput{
		{Password: "x", FirstName: "A", LastName: "B"},
		{Email: "not-an-email", Password: "x", FirstName: "A", LastName: "B"},
		{Email: "a@b.com", FirstName: "A", LastName: "B"},
		{Email: "a@b.com", Password: "x", LastName: "B"},
	}
	for i, in := range cases {
		if _, err := svc.Signup(context.Background(), in); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_UpdateProfile_Partial(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Email:     "ana@example.com",
		Password:  "pass1234",
		FirstName: "Ana",
		LastName:  "Gomez",
		Phone:     "111",
		City:      "Lima",
	})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	phone := "222"
	p, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	if p.Phone != "222" {
		t.Fatalf("expected phone updated, got %s", p.Phone)
	}
	// Campos no enviados quedan como estaban.
	if p.City != "Lima" {
		t.Fatalf("expected city untouched, got %q", p.City)
	}
}

func TestService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := NewService(newTestRepo())

	phone := "222"
	if _, err := svc.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{Phone: &phone}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
