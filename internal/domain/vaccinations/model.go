package vaccinations

import "time"

// VaccineType es la definición de una vacuna aplicable.
type VaccineType struct {
	ID          string
	Name        string
	Description string
}

// Vaccination es la aplicación agendada de una vacuna a un animal.
// Pendiente == CompletedDate nil.
type Vaccination struct {
	ID        string
	AnimalID  string
	VaccineID string

	ScheduledDate time.Time
	CompletedDate *time.Time

	// Enriquecido en listados (joins con animals/vaccine_types).
	AnimalName  string
	VaccineName string
}

func (v Vaccination) Pending() bool {
	return v.CompletedDate == nil
}
