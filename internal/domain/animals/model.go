package animals

import "time"

// Status define el ciclo de vida de un animal dentro de la plataforma.
type Status string

const (
	StatusAvailable       Status = "available"
	StatusPendingAdoption Status = "pending_adoption"
	StatusAdopted         Status = "adopted"
	StatusPendingFoster   Status = "pending_foster"
	StatusFostered        Status = "fostered"
	StatusMedicalHold     Status = "medical_hold"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusPendingAdoption, StatusAdopted,
		StatusPendingFoster, StatusFostered, StatusMedicalHold:
		return true
	}
	return false
}

// Gender define el sexo del animal.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Animal representa un animal adoptable, con o sin refugio asignado.
type Animal struct {
	ID   string
	Name string

	Species string
	Breed   string
	Age     *int
	Gender  Gender

	HealthStatus string
	Neutered     bool

	// ShelterID nil = animal sin refugio asignado.
	ShelterID *string

	ImagePath string
	Status    Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
