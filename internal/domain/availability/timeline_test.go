package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/appointment"
)

func addSpecific(t *testing.T, f *fixture, doctorID uuid.UUID, date time.Time, start, end string) *SlotDefinition {
	t.Helper()
	sd := &SlotDefinition{
		DoctorID:  doctorID,
		Kind:      KindSpecific,
		Date:      &date,
		StartTime: start,
		EndTime:   end,
	}
	if err := f.svc.CreateSlotDefinition(context.Background(), sd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sd
}

func findDay(t *testing.T, ov *Overview, date time.Time) TimelineDay {
	t.Helper()
	key := date.Format("2006-01-02")
	for _, d := range ov.Timeline {
		if d.Date == key {
			return d
		}
	}
	t.Fatalf("day %s missing from timeline", key)
	return TimelineDay{}
}

func TestOverview_WindowShape(t *testing.T) {
	now := monday.Add(9 * time.Hour)
	f := newFixture(now)
	ov, err := f.svc.Overview(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ov.Timeline) != 61 {
		t.Errorf("expected 61 timeline days for a 30-day window, got %d", len(ov.Timeline))
	}
	if ov.Window.From != now.AddDate(0, 0, -30).Format("2006-01-02") {
		t.Errorf("unexpected window start %s", ov.Window.From)
	}
	if ov.Window.To != now.AddDate(0, 0, 30).Format("2006-01-02") {
		t.Errorf("unexpected window end %s", ov.Window.To)
	}
}

func TestOverview_SlotStatuses(t *testing.T) {
	now := monday.Add(9 * time.Hour)
	f := newFixture(now)
	doctorID := uuid.New()

	future := monday.AddDate(0, 0, 3)
	past := monday.AddDate(0, 0, -3)
	addSpecific(t, f, doctorID, future, "10:00", "11:00")
	addSpecific(t, f, doctorID, past, "10:00", "11:00")

	busyDate := monday.AddDate(0, 0, 5)
	addSpecific(t, f, doctorID, busyDate, "14:00", "15:00")
	f.appts.appointments = []*appointment.Appointment{{
		ID: uuid.New(), DoctorID: doctorID, PatientID: uuid.New(),
		ScheduledAt: busyDate.Add(14 * time.Hour), Status: appointment.StatusScheduled,
	}}

	ov, err := f.svc.Overview(context.Background(), doctorID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	futureDay := findDay(t, ov, future)
	if len(futureDay.Slots) != 1 || futureDay.Slots[0].Status != SlotAvailable {
		t.Errorf("expected one available slot on %s, got %+v", futureDay.Date, futureDay.Slots)
	}
	if !futureDay.Slots[0].CanEdit || !futureDay.Slots[0].CanDelete {
		t.Error("expected a free future slot to be editable")
	}

	pastDay := findDay(t, ov, past)
	if len(pastDay.Slots) != 1 || pastDay.Slots[0].Status != SlotExpired {
		t.Errorf("expected one expired slot on %s, got %+v", pastDay.Date, pastDay.Slots)
	}
	if pastDay.Slots[0].CanEdit {
		t.Error("expected a past slot to be immutable")
	}

	busyDay := findDay(t, ov, busyDate)
	if len(busyDay.Slots) != 1 || busyDay.Slots[0].Status != SlotBusy {
		t.Errorf("expected one busy slot, got %+v", busyDay.Slots)
	}
	if busyDay.Slots[0].AppointmentID == nil {
		t.Error("expected busy slot to reference its appointment")
	}
	if !busyDay.Slots[0].CanEdit {
		t.Error("a merely scheduled appointment should not freeze its slot")
	}
}

func TestOverview_CompletedSlotImmutable(t *testing.T) {
	now := monday.Add(9 * time.Hour)
	f := newFixture(now)
	doctorID := uuid.New()

	date := monday.AddDate(0, 0, 4)
	addSpecific(t, f, doctorID, date, "10:00", "11:00")
	f.appts.appointments = []*appointment.Appointment{{
		ID: uuid.New(), DoctorID: doctorID, PatientID: uuid.New(),
		ScheduledAt: date.Add(10 * time.Hour), Status: appointment.StatusCompleted,
	}}

	ov, err := f.svc.Overview(context.Background(), doctorID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := findDay(t, ov, date)
	if day.Slots[0].Status != SlotCompleted {
		t.Errorf("expected completed status, got %s", day.Slots[0].Status)
	}
	if day.Slots[0].CanEdit || day.Slots[0].CanDelete {
		t.Error("a completed consultation must keep its slot immutable")
	}
}

func TestOverview_BlockedDayFlag(t *testing.T) {
	now := monday.Add(9 * time.Hour)
	f := newFixture(now)
	doctorID := uuid.New()

	date := monday.AddDate(0, 0, 6)
	if err := f.svc.CreateBlockedDate(context.Background(), &BlockedDate{DoctorID: doctorID, Date: date}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ov, err := f.svc.Overview(context.Background(), doctorID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !findDay(t, ov, date).Blocked {
		t.Error("expected blocked flag on the timeline day")
	}
}

func TestOverview_Summary(t *testing.T) {
	now := monday.Add(9 * time.Hour)
	f := newFixture(now)
	doctorID := uuid.New()

	// Two future slots inside the 7-day lookahead, one past.
	addSpecific(t, f, doctorID, monday.AddDate(0, 0, 2), "10:00", "11:00")
	addSpecific(t, f, doctorID, monday.AddDate(0, 0, 3), "10:00", "11:00")
	addSpecific(t, f, doctorID, monday.AddDate(0, 0, -2), "10:00", "11:00")

	nextAt := monday.AddDate(0, 0, 2).Add(10 * time.Hour)
	doneAt := monday.AddDate(0, 0, -2).Add(10 * time.Hour)
	f.appts.appointments = []*appointment.Appointment{
		{ID: uuid.New(), DoctorID: doctorID, PatientID: uuid.New(), ScheduledAt: nextAt, Status: appointment.StatusScheduled},
		{ID: uuid.New(), DoctorID: doctorID, PatientID: uuid.New(), ScheduledAt: doneAt, Status: appointment.StatusCompleted},
	}

	ov, err := f.svc.Overview(context.Background(), doctorID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ov.Summary
	if s.FutureSlots != 2 {
		t.Errorf("future slots = %d, want 2", s.FutureSlots)
	}
	if s.AvailableThisWeek != 1 {
		t.Errorf("available this week = %d, want 1", s.AvailableThisWeek)
	}
	if s.PastSlots != 1 {
		t.Errorf("past slots = %d, want 1", s.PastSlots)
	}
	if s.NextSevenDays.Total != 2 || s.NextSevenDays.Busy != 1 || s.NextSevenDays.Available != 1 {
		t.Errorf("unexpected 7-day breakdown: %+v", s.NextSevenDays)
	}
	if s.NextAppointment == nil || !s.NextAppointment.ScheduledAt.Equal(nextAt) {
		t.Errorf("unexpected next appointment: %+v", s.NextAppointment)
	}
	if len(s.LastCompleted) != 1 || !s.LastCompleted[0].ScheduledAt.Equal(doneAt) {
		t.Errorf("unexpected completed history: %+v", s.LastCompleted)
	}
}
