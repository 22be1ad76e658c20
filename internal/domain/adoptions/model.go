package adoptions

import "time"

// Status define el ciclo de vida de una solicitud de adopción.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Adoption vincula un usuario con un animal que solicita adoptar.
// Invariante: a lo sumo una solicitud pending por par (user, animal).
type Adoption struct {
	ID       string
	UserID   string
	AnimalID string

	Status Status

	// Gates de aprobación. El data layer no exige que estén en true
	// para aprobar; solo los registra.
	HomeCheckPassed bool
	FeePaid         bool
	ContractSigned  bool

	ApplicationDate time.Time
	ApprovalDate    *time.Time

	// Enriquecido en listados (joins con animals/users).
	AnimalName      string
	AnimalSpecies   string
	AnimalBreed     string
	AnimalImagePath string
	UserFirstName   string
	UserLastName    string
}
