package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/platform/clock"
)

type Service struct {
	appointments Repository
	clock        clock.Clock
}

func NewService(appointments Repository, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{appointments: appointments, clock: clk}
}

// Book creates a new appointment. The unique index on (doctor_id,
// scheduled_at) arbitrates races, so no advisory locking is needed here.
func (s *Service) Book(ctx context.Context, a *Appointment) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ScheduledAt.Before(s.clock.Now()) {
		return fmt.Errorf("cannot book an appointment in the past")
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Reschedule moves an appointment to a new start time.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, newTime time.Time) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(a.Status, StatusRescheduled) {
		return nil, fmt.Errorf("cannot reschedule an appointment in status %s", a.Status)
	}
	if newTime.Before(s.clock.Now()) {
		return nil, fmt.Errorf("cannot reschedule into the past")
	}
	a.ScheduledAt = newTime
	a.Status = StatusRescheduled
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Start(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusInProgress)
}

func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCompleted)
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *Service) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusNoShow)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to string) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("cannot move appointment from %s to %s", a.Status, to)
	}
	return s.appointments.UpdateStatus(ctx, id, to)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit, offset)
}
