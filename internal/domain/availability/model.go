package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/appointment"
	"github.com/telemed/telemed/internal/domain/practice"
)

type SlotKind string

const (
	KindRecurring SlotKind = "recurring"
	KindSpecific  SlotKind = "specific"
)

// SlotDefinition is a doctor's availability rule. A recurring definition
// repeats weekly on DayOfWeek; a specific one applies to a single Date.
// Exactly one of the two is set, matching Kind.
type SlotDefinition struct {
	ID         uuid.UUID     `json:"id"`
	DoctorID   uuid.UUID     `json:"doctor_id"`
	Kind       SlotKind      `json:"kind"`
	DayOfWeek  *time.Weekday `json:"day_of_week,omitempty"`
	Date       *time.Time    `json:"date,omitempty"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	LocationID *uuid.UUID    `json:"location_id,omitempty"`
	Active     bool          `json:"active"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	DeletedAt  *time.Time    `json:"deleted_at,omitempty"`
}

// Validate checks shape and the minimum interval length in minutes.
func (s *SlotDefinition) Validate(minDurationMinutes int) error {
	switch s.Kind {
	case KindRecurring:
		if s.DayOfWeek == nil {
			return fmt.Errorf("day_of_week is required for recurring slots")
		}
		if s.Date != nil {
			return fmt.Errorf("recurring slots must not carry a date")
		}
	case KindSpecific:
		if s.Date == nil {
			return fmt.Errorf("date is required for specific slots")
		}
		if s.DayOfWeek != nil {
			return fmt.Errorf("specific slots must not carry a day_of_week")
		}
	default:
		return fmt.Errorf("invalid slot kind: %s", s.Kind)
	}

	start, err := parseClock(s.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(s.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start time %s must precede end time %s", s.StartTime, s.EndTime)
	}
	if end-start < minDurationMinutes {
		return fmt.Errorf("slot must span at least %d minutes", minDurationMinutes)
	}
	return nil
}

// appliesTo reports whether this definition covers the given calendar date.
func (s *SlotDefinition) appliesTo(date time.Time) bool {
	switch s.Kind {
	case KindRecurring:
		return s.DayOfWeek != nil && *s.DayOfWeek == date.Weekday()
	case KindSpecific:
		return s.Date != nil && sameDay(*s.Date, date)
	}
	return false
}

type BlockedDate struct {
	ID        uuid.UUID  `json:"id"`
	DoctorID  uuid.UUID  `json:"doctor_id"`
	Date      time.Time  `json:"date"`
	Reason    *string    `json:"reason,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (b *BlockedDate) Validate() error {
	if b.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// AvailableSlot is one bookable start time on a given date.
type AvailableSlot struct {
	Time       string             `json:"time"`
	LocationID *uuid.UUID         `json:"location_id,omitempty"`
	Location   *practice.Location `json:"location,omitempty"`
}

// DayAvailability is the resolver's answer for one calendar date.
type DayAvailability struct {
	Date          string          `json:"date"`
	Blocked       bool            `json:"blocked"`
	BlockedReason *string         `json:"blocked_reason,omitempty"`
	Slots         []AvailableSlot `json:"slots"`
}

// Timeline slot statuses.
const (
	SlotAvailable = "available"
	SlotBusy      = "busy"
	SlotOngoing   = "ongoing"
	SlotCompleted = "completed"
	SlotCancelled = "cancelled"
	SlotNoShow    = "no_show"
	SlotExpired   = "expired"
)

type TimelineSlot struct {
	SlotID        uuid.UUID  `json:"slot_id"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	LocationID    *uuid.UUID `json:"location_id,omitempty"`
	Status        string     `json:"status"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	CanEdit       bool       `json:"can_edit"`
	CanDelete     bool       `json:"can_delete"`
}

type TimelineDay struct {
	Date    string         `json:"date"`
	Blocked bool           `json:"blocked"`
	Slots   []TimelineSlot `json:"slots"`
}

type WeekAhead struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Busy      int `json:"busy"`
}

type Summary struct {
	FutureSlots       int                        `json:"future_slots"`
	AvailableThisWeek int                        `json:"available_this_week"`
	NextSevenDays     WeekAhead                  `json:"next_seven_days"`
	PastSlots         int                        `json:"past_slots"`
	NextAppointment   *appointment.Appointment   `json:"next_appointment,omitempty"`
	LastCompleted     []*appointment.Appointment `json:"last_completed"`
}

type OverviewWindow struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Overview struct {
	Timeline  []TimelineDay        `json:"timeline"`
	Summary   Summary              `json:"summary"`
	Window    OverviewWindow       `json:"window"`
	Locations []*practice.Location `json:"locations"`
}

// ConfigurationBatch is a doctor's full availability setup applied in one
// atomic save.
type ConfigurationBatch struct {
	Locations      []*practice.Location `json:"locations"`
	RecurringSlots []*SlotDefinition    `json:"recurring_slots"`
	SpecificSlots  []*SlotDefinition    `json:"specific_slots"`
	BlockedDates   []*BlockedDate       `json:"blocked_dates"`
}
