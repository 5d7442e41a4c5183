package availability

import (
	"testing"
	"time"
)

func TestSlotDefinitionValidate(t *testing.T) {
	monday := time.Monday
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		sd      SlotDefinition
		wantErr bool
	}{
		{"valid recurring", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, StartTime: "08:00", EndTime: "12:00"}, false},
		{"valid specific", SlotDefinition{Kind: KindSpecific, Date: &date, StartTime: "08:00", EndTime: "12:00"}, false},
		{"recurring without day", SlotDefinition{Kind: KindRecurring, StartTime: "08:00", EndTime: "12:00"}, true},
		{"recurring with date", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, Date: &date, StartTime: "08:00", EndTime: "12:00"}, true},
		{"specific without date", SlotDefinition{Kind: KindSpecific, StartTime: "08:00", EndTime: "12:00"}, true},
		{"specific with day", SlotDefinition{Kind: KindSpecific, Date: &date, DayOfWeek: &monday, StartTime: "08:00", EndTime: "12:00"}, true},
		{"unknown kind", SlotDefinition{Kind: "weekly", DayOfWeek: &monday, StartTime: "08:00", EndTime: "12:00"}, true},
		{"inverted interval", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, StartTime: "12:00", EndTime: "08:00"}, true},
		{"zero length", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, StartTime: "08:00", EndTime: "08:00"}, true},
		{"below minimum", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, StartTime: "08:00", EndTime: "08:30"}, true},
		{"malformed time", SlotDefinition{Kind: KindRecurring, DayOfWeek: &monday, StartTime: "eight", EndTime: "12:00"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sd.Validate(60)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:45", 525, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseClock(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(525); got != "08:45" {
		t.Errorf("formatClock(525) = %s, want 08:45", got)
	}
	if got := formatClock(0); got != "00:00" {
		t.Errorf("formatClock(0) = %s, want 00:00", got)
	}
}

func TestSlotDefinitionAppliesTo(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	day := time.Monday

	recurring := &SlotDefinition{Kind: KindRecurring, DayOfWeek: &day}
	if !recurring.appliesTo(monday) {
		t.Error("recurring Monday definition should cover a Monday")
	}
	if recurring.appliesTo(tuesday) {
		t.Error("recurring Monday definition should not cover a Tuesday")
	}

	specific := &SlotDefinition{Kind: KindSpecific, Date: &monday}
	if !specific.appliesTo(monday) {
		t.Error("specific definition should cover its own date")
	}
	if specific.appliesTo(tuesday) {
		t.Error("specific definition should not cover another date")
	}
}
