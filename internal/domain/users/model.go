package users

import "time"

// Role define el rol funcional del usuario dentro de la plataforma.
type Role string

const (
	RoleAdopter   Role = "adopter"
	RoleVolunteer Role = "volunteer"
)

// User representa la identidad de una cuenta registrada.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile agrupa los datos de contacto opcionales del usuario.
type Profile struct {
	UserID       string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	Country      string
}
