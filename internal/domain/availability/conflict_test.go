package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func recurringDef(doctorID uuid.UUID, day time.Weekday, start, end string, locationID *uuid.UUID) *SlotDefinition {
	return &SlotDefinition{
		ID:         uuid.New(),
		DoctorID:   doctorID,
		Kind:       KindRecurring,
		DayOfWeek:  &day,
		StartTime:  start,
		EndTime:    end,
		LocationID: locationID,
		Active:     true,
	}
}

func TestFindConflict_Overlap(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Monday
	existing := []*SlotDefinition{recurringDef(doctorID, monday, "09:00", "12:00", nil)}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"starts inside", "10:00", "13:00", true},
		{"ends inside", "08:00", "10:00", true},
		{"spans fully", "08:00", "13:00", true},
		{"contained", "10:00", "11:00", true},
		{"before", "07:00", "09:00", false},
		{"after", "12:00", "14:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := findConflict(existing, ConflictCheck{
				DoctorID:  doctorID,
				StartTime: tc.start,
				EndTime:   tc.end,
				DayOfWeek: &monday,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got != nil) != tc.want {
				t.Errorf("conflict = %v, want %v", got != nil, tc.want)
			}
		})
	}
}

func TestFindConflict_Symmetry(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Monday
	a := recurringDef(doctorID, monday, "09:00", "11:00", nil)
	b := recurringDef(doctorID, monday, "10:00", "12:00", nil)

	abConflict, err := findConflict([]*SlotDefinition{a}, ConflictCheck{
		DoctorID: doctorID, StartTime: b.StartTime, EndTime: b.EndTime, DayOfWeek: &monday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	baConflict, err := findConflict([]*SlotDefinition{b}, ConflictCheck{
		DoctorID: doctorID, StartTime: a.StartTime, EndTime: a.EndTime, DayOfWeek: &monday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (abConflict != nil) != (baConflict != nil) {
		t.Error("conflict detection is not symmetric")
	}
}

func TestFindConflict_WildcardLocation(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Monday
	locA := uuid.New()
	locB := uuid.New()

	// Existing slot with no location conflicts with any proposed location.
	wildcard := []*SlotDefinition{recurringDef(doctorID, monday, "09:00", "12:00", nil)}
	got, err := findConflict(wildcard, ConflictCheck{
		DoctorID: doctorID, StartTime: "10:00", EndTime: "11:00", DayOfWeek: &monday, LocationID: &locA,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Error("expected conflict with location-less existing slot")
	}

	// Existing slot at a different location does not conflict.
	scoped := []*SlotDefinition{recurringDef(doctorID, monday, "09:00", "12:00", &locB)}
	got, err = findConflict(scoped, ConflictCheck{
		DoctorID: doctorID, StartTime: "10:00", EndTime: "11:00", DayOfWeek: &monday, LocationID: &locA,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected no conflict across distinct locations")
	}
}

func TestFindConflict_ExcludeID(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Monday
	existing := recurringDef(doctorID, monday, "09:00", "12:00", nil)

	got, err := findConflict([]*SlotDefinition{existing}, ConflictCheck{
		DoctorID:  doctorID,
		StartTime: "09:00",
		EndTime:   "12:00",
		DayOfWeek: &monday,
		ExcludeID: &existing.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("a slot must not conflict with itself when excluded")
	}
}
