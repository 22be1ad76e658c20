package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string

	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	Country      string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}
	if in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	role := Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = RoleAdopter
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p := Profile{
		UserID:       u.ID,
		Phone:        strings.TrimSpace(in.Phone),
		AddressLine1: strings.TrimSpace(in.AddressLine1),
		AddressLine2: strings.TrimSpace(in.AddressLine2),
		City:         strings.TrimSpace(in.City),
		Country:      strings.TrimSpace(in.Country),
	}

	if err := s.repo.Create(ctx, u, p); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByEmail(ctx, email)
}

// Profile devuelve la identidad junto con los datos de contacto.
func (s *Service) Profile(ctx context.Context, userID string) (User, Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, Profile{}, err
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		// perfil ausente no es fatal: cuenta creada sin datos de contacto
		p = Profile{UserID: userID}
	}
	return u, p, nil
}

type UpdateProfileInput struct {
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	Country      *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (Profile, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return Profile{}, err
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		p = Profile{UserID: userID}
	}

	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.AddressLine1 != nil {
		p.AddressLine1 = strings.TrimSpace(*in.AddressLine1)
	}
	if in.AddressLine2 != nil {
		p.AddressLine2 = strings.TrimSpace(*in.AddressLine2)
	}
	if in.City != nil {
		p.City = strings.TrimSpace(*in.City)
	}
	if in.Country != nil {
		p.Country = strings.TrimSpace(*in.Country)
	}

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
