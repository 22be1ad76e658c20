package strayreports

import "time"

// Status define el ciclo de vida de un reporte ciudadano.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Report es el avistamiento de un animal callejero enviado por un usuario.
// Al aceptarse puede promoverse a un Animal registrado; la referencia
// inversa queda en ProcessedAnimalID.
type Report struct {
	ID     string
	UserID string

	Description     string
	AnimalType      string
	AnimalSize      string
	VisibleInjuries string

	Province  string
	City      string
	Latitude  *float64
	Longitude *float64

	Status       Status
	ReportDate   time.Time
	AcceptedDate *time.Time

	ProcessedAnimalID *string

	// Enriquecido en listados admin (join con users).
	ReporterFirstName string
	ReporterLastName  string
}
