package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/practice"
	"github.com/telemed/telemed/internal/platform/clock"
	"github.com/telemed/telemed/internal/platform/db"
)

// Options are the scheduling knobs, system-global rather than per-doctor.
type Options struct {
	SlotDurationMinutes int
	MinSlotMinutes      int
	LunchBreakStart     string
	LunchBreakEnd       string
	LeadTimeMinutes     int
	TimelineWindowDays  int
	LookaheadDays       int
	LastSessionsCount   int
}

func DefaultOptions() Options {
	return Options{
		SlotDurationMinutes: 45,
		MinSlotMinutes:      60,
		LunchBreakStart:     "12:00",
		LunchBreakEnd:       "14:00",
		LeadTimeMinutes:     5,
		TimelineWindowDays:  30,
		LookaheadDays:       7,
		LastSessionsCount:   4,
	}
}

func (o Options) lunchBreak() (*BreakWindow, error) {
	if o.LunchBreakStart == "" || o.LunchBreakEnd == "" {
		return nil, nil
	}
	start, err := parseClock(o.LunchBreakStart)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(o.LunchBreakEnd)
	if err != nil {
		return nil, err
	}
	return &BreakWindow{Start: start, End: end}, nil
}

type Service struct {
	slots        SlotDefinitionRepository
	blocked      BlockedDateRepository
	appointments AppointmentFinder
	locations    LocationDirectory
	tx           db.TxRunner
	clock        clock.Clock
	opts         Options
}

func NewService(
	slots SlotDefinitionRepository,
	blocked BlockedDateRepository,
	appointments AppointmentFinder,
	locations LocationDirectory,
	tx db.TxRunner,
	clk clock.Clock,
	opts Options,
) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{
		slots:        slots,
		blocked:      blocked,
		appointments: appointments,
		locations:    locations,
		tx:           tx,
		clock:        clk,
		opts:         opts,
	}
}

// -- Slot Definitions --

func (s *Service) CreateSlotDefinition(ctx context.Context, sd *SlotDefinition) error {
	if err := sd.Validate(s.opts.MinSlotMinutes); err != nil {
		return err
	}
	ok, err := s.ValidateSlot(ctx, checkFor(sd, nil))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("the interval %s-%s overlaps an existing slot", sd.StartTime, sd.EndTime)
	}
	sd.Active = true
	return s.slots.Create(ctx, sd)
}

func (s *Service) GetSlotDefinition(ctx context.Context, id uuid.UUID) (*SlotDefinition, error) {
	return s.slots.GetByID(ctx, id)
}

func (s *Service) ListSlotDefinitions(ctx context.Context, doctorID uuid.UUID) ([]*SlotDefinition, error) {
	return s.slots.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdateSlotDefinition(ctx context.Context, sd *SlotDefinition) error {
	existing, err := s.slots.GetByID(ctx, sd.ID)
	if err != nil {
		return err
	}
	if existing.DoctorID != sd.DoctorID {
		return fmt.Errorf("slot %s does not belong to doctor %s", sd.ID, sd.DoctorID)
	}
	if err := sd.Validate(s.opts.MinSlotMinutes); err != nil {
		return err
	}
	ok, err := s.ValidateSlot(ctx, checkFor(sd, &sd.ID))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("the interval %s-%s overlaps an existing slot", sd.StartTime, sd.EndTime)
	}
	return s.slots.Update(ctx, sd)
}

func (s *Service) DeleteSlotDefinition(ctx context.Context, doctorID, id uuid.UUID) error {
	existing, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.DoctorID != doctorID {
		return fmt.Errorf("slot %s does not belong to doctor %s", id, doctorID)
	}
	return s.slots.SoftDelete(ctx, id)
}

func checkFor(sd *SlotDefinition, excludeID *uuid.UUID) ConflictCheck {
	return ConflictCheck{
		DoctorID:   sd.DoctorID,
		StartTime:  sd.StartTime,
		EndTime:    sd.EndTime,
		DayOfWeek:  sd.DayOfWeek,
		Date:       sd.Date,
		LocationID: sd.LocationID,
		ExcludeID:  excludeID,
	}
}

// ValidateSlot reports whether the proposed interval is free of conflicts
// with the doctor's existing active definitions of the same kind. True
// means the caller may proceed.
func (s *Service) ValidateSlot(ctx context.Context, check ConflictCheck) (bool, error) {
	var existing []*SlotDefinition
	var err error
	switch {
	case check.DayOfWeek != nil:
		existing, err = s.slots.FindRecurring(ctx, check.DoctorID, *check.DayOfWeek)
	case check.Date != nil:
		existing, err = s.slots.FindSpecific(ctx, check.DoctorID, *check.Date)
	default:
		return false, fmt.Errorf("either day_of_week or date must be given")
	}
	if err != nil {
		return false, err
	}
	conflict, err := findConflict(existing, check)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// -- Blocked Dates --

func (s *Service) CreateBlockedDate(ctx context.Context, b *BlockedDate) error {
	if err := b.Validate(); err != nil {
		return err
	}
	b.Active = true
	return s.blocked.Create(ctx, b)
}

func (s *Service) ListBlockedDates(ctx context.Context, doctorID uuid.UUID) ([]*BlockedDate, error) {
	return s.blocked.ListByDoctor(ctx, doctorID)
}

func (s *Service) DeleteBlockedDate(ctx context.Context, doctorID, id uuid.UUID) error {
	existing, err := s.blocked.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.DoctorID != doctorID {
		return fmt.Errorf("blocked date %s does not belong to doctor %s", id, doctorID)
	}
	return s.blocked.SoftDelete(ctx, id)
}

// -- Batch configuration --

// SaveConfiguration persists a doctor's full availability setup in one
// transaction. Every element is validated before any write happens, so a
// single bad element yields zero persisted changes.
func (s *Service) SaveConfiguration(ctx context.Context, doctorID uuid.UUID, batch *ConfigurationBatch) error {
	for _, l := range batch.Locations {
		l.DoctorID = doctorID
		if err := l.Validate(); err != nil {
			return fmt.Errorf("location %q: %w", l.Name, err)
		}
	}
	for _, sd := range batch.RecurringSlots {
		sd.DoctorID = doctorID
		sd.Kind = KindRecurring
		if err := sd.Validate(s.opts.MinSlotMinutes); err != nil {
			return fmt.Errorf("recurring slot %s-%s: %w", sd.StartTime, sd.EndTime, err)
		}
	}
	for _, sd := range batch.SpecificSlots {
		sd.DoctorID = doctorID
		sd.Kind = KindSpecific
		if err := sd.Validate(s.opts.MinSlotMinutes); err != nil {
			return fmt.Errorf("specific slot %s-%s: %w", sd.StartTime, sd.EndTime, err)
		}
	}
	for _, b := range batch.BlockedDates {
		b.DoctorID = doctorID
		if err := b.Validate(); err != nil {
			return fmt.Errorf("blocked date: %w", err)
		}
	}

	return s.tx.InTx(ctx, func(ctx context.Context) error {
		for _, l := range batch.Locations {
			l.Active = true
			if err := s.locations.Create(ctx, l); err != nil {
				return err
			}
		}
		for _, sd := range append(batch.RecurringSlots, batch.SpecificSlots...) {
			sd.Active = true
			if err := s.slots.Create(ctx, sd); err != nil {
				return err
			}
		}
		for _, b := range batch.BlockedDates {
			b.Active = true
			if err := s.blocked.Create(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

// -- helpers shared by resolver and projector --

func (s *Service) definitionsFor(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*SlotDefinition, error) {
	recurring, err := s.slots.FindRecurring(ctx, doctorID, date.Weekday())
	if err != nil {
		return nil, err
	}
	specific, err := s.slots.FindSpecific(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	var defs []*SlotDefinition
	for _, sd := range append(recurring, specific...) {
		if sd.appliesTo(date) {
			defs = append(defs, sd)
		}
	}
	return defs, nil
}

func (s *Service) locationByID(ctx context.Context, id *uuid.UUID) *practice.Location {
	if id == nil {
		return nil
	}
	l, err := s.locations.GetByID(ctx, *id)
	if err != nil {
		return nil
	}
	return l
}
