package availability

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/appointment"
)

// Overview projects the doctor's specific slot definitions and bookings
// over a rolling window into a per-day timeline plus dashboard summary
// counters. Recurring definitions are open-ended weekly availability, not
// discrete commitments, so they stay out of the timeline.
func (s *Service) Overview(ctx context.Context, doctorID uuid.UUID, from, to *time.Time) (*Overview, error) {
	now := s.clock.Now()
	windowStart := now.AddDate(0, 0, -s.opts.TimelineWindowDays)
	windowEnd := now.AddDate(0, 0, s.opts.TimelineWindowDays)
	if from != nil {
		windowStart = *from
	}
	if to != nil {
		windowEnd = *to
	}
	windowStart = truncateDay(windowStart)
	windowEnd = truncateDay(windowEnd)

	defs, err := s.slots.FindSpecificInRange(ctx, doctorID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	blockedDates, err := s.blocked.FindInRange(ctx, doctorID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.FindByDoctorAndRange(ctx, doctorID, windowStart, windowEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	defsByDay := map[string][]*SlotDefinition{}
	for _, sd := range defs {
		key := sd.Date.Format("2006-01-02")
		defsByDay[key] = append(defsByDay[key], sd)
	}
	blockedByDay := map[string]bool{}
	for _, b := range blockedDates {
		blockedByDay[b.Date.Format("2006-01-02")] = true
	}
	apptsByMoment := map[string]*appointment.Appointment{}
	for _, a := range appts {
		apptsByMoment[momentKey(a.ScheduledAt)] = a
	}

	ov := &Overview{
		Timeline:  []TimelineDay{},
		Locations: locations,
		Window: OverviewWindow{
			From: windowStart.Format("2006-01-02"),
			To:   windowEnd.Format("2006-01-02"),
		},
	}
	ov.Summary.LastCompleted = []*appointment.Appointment{}

	weekStart, weekEnd := currentWeek(now)
	sevenDaysEnd := now.AddDate(0, 0, s.opts.LookaheadDays)

	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		entry := TimelineDay{
			Date:    key,
			Blocked: blockedByDay[key],
			Slots:   []TimelineSlot{},
		}
		for _, sd := range defsByDay[key] {
			slot, err := s.projectSlot(sd, day, now, apptsByMoment)
			if err != nil {
				return nil, err
			}
			entry.Slots = append(entry.Slots, slot)

			slotStart, err := slotMoment(day, sd.StartTime)
			if err != nil {
				return nil, err
			}
			if slotStart.After(now) {
				ov.Summary.FutureSlots++
				if slot.Status == SlotAvailable && !slotStart.Before(weekStart) && slotStart.Before(weekEnd) {
					ov.Summary.AvailableThisWeek++
				}
				if slotStart.Before(sevenDaysEnd) {
					ov.Summary.NextSevenDays.Total++
					switch slot.Status {
					case SlotAvailable:
						ov.Summary.NextSevenDays.Available++
					case SlotBusy, SlotOngoing:
						ov.Summary.NextSevenDays.Busy++
					}
				}
			} else {
				ov.Summary.PastSlots++
			}
		}
		ov.Timeline = append(ov.Timeline, entry)
	}

	ov.Summary.NextAppointment = nextUpcoming(appts, now)
	ov.Summary.LastCompleted = lastCompleted(appts, now, s.opts.LastSessionsCount)
	return ov, nil
}

func (s *Service) projectSlot(sd *SlotDefinition, day, now time.Time, byMoment map[string]*appointment.Appointment) (TimelineSlot, error) {
	slot := TimelineSlot{
		SlotID:     sd.ID,
		StartTime:  sd.StartTime,
		EndTime:    sd.EndTime,
		LocationID: sd.LocationID,
	}
	slotStart, err := slotMoment(day, sd.StartTime)
	if err != nil {
		return slot, err
	}
	slotEnd, err := slotMoment(day, sd.EndTime)
	if err != nil {
		return slot, err
	}

	appt := byMoment[momentKey(slotStart)]
	if appt != nil {
		slot.AppointmentID = &appt.ID
		switch appt.Status {
		case appointment.StatusScheduled, appointment.StatusRescheduled:
			slot.Status = SlotBusy
		case appointment.StatusInProgress:
			slot.Status = SlotOngoing
		case appointment.StatusCompleted:
			slot.Status = SlotCompleted
		case appointment.StatusCancelled:
			slot.Status = SlotCancelled
		case appointment.StatusNoShow:
			slot.Status = SlotNoShow
		}
	} else if !slotEnd.After(now) {
		slot.Status = SlotExpired
	} else {
		slot.Status = SlotAvailable
	}

	// Committed or historical consultations keep their slot immutable.
	future := slotStart.After(now)
	mutableAppt := appt == nil ||
		(appt.Status != appointment.StatusCompleted && appt.Status != appointment.StatusInProgress)
	slot.CanEdit = future && mutableAppt
	slot.CanDelete = future && mutableAppt
	return slot, nil
}

func nextUpcoming(appts []*appointment.Appointment, now time.Time) *appointment.Appointment {
	occupying := map[string]bool{}
	for _, st := range appointment.OccupyingStatuses() {
		occupying[st] = true
	}
	var next *appointment.Appointment
	for _, a := range appts {
		if !a.ScheduledAt.After(now) || !occupying[a.Status] {
			continue
		}
		if next == nil || a.ScheduledAt.Before(next.ScheduledAt) {
			next = a
		}
	}
	return next
}

func lastCompleted(appts []*appointment.Appointment, now time.Time, n int) []*appointment.Appointment {
	var done []*appointment.Appointment
	for _, a := range appts {
		if a.Status == appointment.StatusCompleted && a.ScheduledAt.Before(now) {
			done = append(done, a)
		}
	}
	sort.Slice(done, func(i, j int) bool {
		return done[i].ScheduledAt.After(done[j].ScheduledAt)
	})
	if len(done) > n {
		done = done[:n]
	}
	if done == nil {
		done = []*appointment.Appointment{}
	}
	return done
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// currentWeek returns the Monday-to-Monday interval containing t.
func currentWeek(t time.Time) (time.Time, time.Time) {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func slotMoment(day time.Time, clockTime string) (time.Time, error) {
	m, err := parseClock(clockTime)
	if err != nil {
		return time.Time{}, err
	}
	return truncateDay(day).Add(time.Duration(m) * time.Minute), nil
}

func momentKey(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
