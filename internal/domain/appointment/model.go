package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Appointment lifecycle statuses.
const (
	StatusScheduled   = "scheduled"
	StatusRescheduled = "rescheduled"
	StatusInProgress  = "in_progress"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
	StatusNoShow      = "no_show"
)

var validStatuses = map[string]bool{
	StatusScheduled:   true,
	StatusRescheduled: true,
	StatusInProgress:  true,
	StatusCompleted:   true,
	StatusCancelled:   true,
	StatusNoShow:      true,
}

// OccupyingStatuses are the statuses that keep a slot blocked. A cancelled
// or completed visit frees its time for new bookings on the same day.
func OccupyingStatuses() []string {
	return []string{StatusScheduled, StatusRescheduled, StatusInProgress}
}

// Allowed status transitions. Terminal states have no outgoing edges.
var transitions = map[string][]string{
	StatusScheduled:   {StatusRescheduled, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusRescheduled: {StatusRescheduled, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress:  {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	DoctorID    uuid.UUID         `json:"doctor_id"`
	PatientID   uuid.UUID         `json:"patient_id"`
	LocationID  *uuid.UUID        `json:"location_id,omitempty"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      string            `json:"status"`
	Notes       *string           `json:"notes,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Appointment) Validate() error {
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return nil
}
