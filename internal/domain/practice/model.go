package practice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location types a doctor can attach availability to.
const (
	LocationTeleconsultation = "teleconsultation"
	LocationOffice           = "office"
	LocationHospital         = "hospital"
	LocationClinic           = "clinic"
)

var validLocationTypes = map[string]bool{
	LocationTeleconsultation: true,
	LocationOffice:           true,
	LocationHospital:         true,
	LocationClinic:           true,
}

type Doctor struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Specialty *string    `json:"specialty,omitempty"`
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Location struct {
	ID        uuid.UUID  `json:"id"`
	DoctorID  uuid.UUID  `json:"doctor_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Address   *string    `json:"address,omitempty"`
	Contact   *string    `json:"contact,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (l *Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validLocationTypes[l.Type] {
		return fmt.Errorf("invalid location type: %s", l.Type)
	}
	return nil
}
