package shelters

import "time"

// Shelter representa un refugio físico al que pueden asociarse animales.
type Shelter struct {
	ID      string
	Name    string
	Address string
	City    string
	Country string
	Phone   string
	Email   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
