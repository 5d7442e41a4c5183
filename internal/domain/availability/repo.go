package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/appointment"
	"github.com/telemed/telemed/internal/domain/practice"
)

type SlotDefinitionRepository interface {
	Create(ctx context.Context, sd *SlotDefinition) error
	GetByID(ctx context.Context, id uuid.UUID) (*SlotDefinition, error)
	Update(ctx context.Context, sd *SlotDefinition) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// ListByDoctor returns the doctor's active, non-deleted definitions.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*SlotDefinition, error)
	FindRecurring(ctx context.Context, doctorID uuid.UUID, day time.Weekday) ([]*SlotDefinition, error)
	FindSpecific(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*SlotDefinition, error)
	FindSpecificInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*SlotDefinition, error)
}

type BlockedDateRepository interface {
	Create(ctx context.Context, b *BlockedDate) error
	GetByID(ctx context.Context, id uuid.UUID) (*BlockedDate, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*BlockedDate, error)

	// GetForDate returns the active blocked date covering the given day,
	// or nil when the day is not blocked.
	GetForDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*BlockedDate, error)
	FindInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*BlockedDate, error)
}

// AppointmentFinder is the read-only view of bookings this package needs.
// Satisfied by the appointment repository.
type AppointmentFinder interface {
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, day time.Time, statuses []string) ([]*appointment.Appointment, error)
	FindByDoctorAndRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

// LocationDirectory is the slice of the practice location repository this
// package needs: reads for slot annotation, Create for batch saves.
type LocationDirectory interface {
	Create(ctx context.Context, l *practice.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*practice.Location, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*practice.Location, error)
}
