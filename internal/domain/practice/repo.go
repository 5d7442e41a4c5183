package practice

import (
	"context"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}

type LocationRepository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Location, error)
	Update(ctx context.Context, l *Location) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
