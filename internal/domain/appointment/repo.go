package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTimeTaken signals that another appointment already holds the requested
// start time for this doctor. Raised from the unique index on
// (doctor_id, scheduled_at), so concurrent bookings lose cleanly.
var ErrTimeTaken = errors.New("appointment time already taken")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// FindByDoctorAndDate returns the doctor's appointments whose start
	// falls on the given calendar day, filtered to the given statuses.
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, day time.Time, statuses []string) ([]*Appointment, error)
	// FindByDoctorAndRange returns appointments with from <= scheduled_at < to.
	FindByDoctorAndRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*Appointment, error)

	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
}
