package practice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	doctors   DoctorRepository
	locations LocationRepository
}

func NewService(doctors DoctorRepository, locations LocationRepository) *Service {
	return &Service{doctors: doctors, locations: locations}
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) CreateLocation(ctx context.Context, l *Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	ok, err := s.doctors.Exists(ctx, l.DoctorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("doctor %s not found", l.DoctorID)
	}
	l.Active = true
	return s.locations.Create(ctx, l)
}

func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context, doctorID uuid.UUID) ([]*Location, error) {
	return s.locations.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdateLocation(ctx context.Context, l *Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	existing, err := s.locations.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing.DoctorID != l.DoctorID {
		return fmt.Errorf("location %s does not belong to doctor %s", l.ID, l.DoctorID)
	}
	return s.locations.Update(ctx, l)
}

func (s *Service) DeleteLocation(ctx context.Context, doctorID, id uuid.UUID) error {
	existing, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.DoctorID != doctorID {
		return fmt.Errorf("location %s does not belong to doctor %s", id, doctorID)
	}
	return s.locations.SoftDelete(ctx, id)
}
