package availability

import (
	"time"

	"github.com/google/uuid"
)

// ConflictCheck describes a proposed slot definition to test against a
// doctor's existing active definitions.
type ConflictCheck struct {
	DoctorID   uuid.UUID     `json:"doctor_id"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	DayOfWeek  *time.Weekday `json:"day_of_week,omitempty"`
	Date       *time.Time    `json:"date,omitempty"`
	LocationID *uuid.UUID    `json:"location_id,omitempty"`
	ExcludeID  *uuid.UUID    `json:"exclude_id,omitempty"`
}

// findConflict returns the first existing definition that overlaps the
// proposal, or nil when the proposal is clear. The caller supplies only
// definitions of the matching kind (same weekday or same date), so this
// checks time and location overlap.
//
// Overlap holds when existing.start < proposed.end and
// existing.end > proposed.start. An existing definition with no location
// is a wildcard and conflicts with any proposed location.
func findConflict(existing []*SlotDefinition, check ConflictCheck) (*SlotDefinition, error) {
	propStart, err := parseClock(check.StartTime)
	if err != nil {
		return nil, err
	}
	propEnd, err := parseClock(check.EndTime)
	if err != nil {
		return nil, err
	}

	for _, sd := range existing {
		if check.ExcludeID != nil && sd.ID == *check.ExcludeID {
			continue
		}
		if check.LocationID != nil && sd.LocationID != nil && *sd.LocationID != *check.LocationID {
			continue
		}
		exStart, err := parseClock(sd.StartTime)
		if err != nil {
			return nil, err
		}
		exEnd, err := parseClock(sd.EndTime)
		if err != nil {
			return nil, err
		}
		if exStart < propEnd && exEnd > propStart {
			return sd, nil
		}
	}
	return nil, nil
}
