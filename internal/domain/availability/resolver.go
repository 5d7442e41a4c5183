package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/internal/domain/appointment"
)

// AvailableSlotsForDate resolves the bookable start times for one calendar
// date. A doctor with no applicable definitions yields an empty slot list,
// not an error. An active blocked date short-circuits everything else.
func (s *Service) AvailableSlotsForDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*DayAvailability, error) {
	day := &DayAvailability{
		Date:  date.Format("2006-01-02"),
		Slots: []AvailableSlot{},
	}

	blocked, err := s.blocked.GetForDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if blocked != nil {
		day.Blocked = true
		day.BlockedReason = blocked.Reason
		return day, nil
	}

	defs, err := s.definitionsFor(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return day, nil
	}

	booked, err := s.appointments.FindByDoctorAndDate(ctx, doctorID, date, appointment.OccupyingStatuses())
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]bool, len(booked))
	for _, a := range booked {
		occupied[formatClock(minutesOf(a.ScheduledAt))] = true
	}

	lunch, err := s.opts.lunchBreak()
	if err != nil {
		return nil, err
	}

	// Same-day bookings need a minimum lead over the wall clock.
	now := s.clock.Now()
	cutoff := -1
	if sameDay(now, date) {
		cutoff = minutesOf(now) + s.opts.LeadTimeMinutes
	}

	for _, def := range defs {
		times, err := GenerateSlots(def.StartTime, def.EndTime, s.opts.SlotDurationMinutes, lunch)
		if err != nil {
			return nil, err
		}
		for _, t := range times {
			if occupied[t] {
				continue
			}
			if cutoff >= 0 {
				m, err := parseClock(t)
				if err != nil {
					return nil, err
				}
				if m <= cutoff {
					continue
				}
			}
			day.Slots = append(day.Slots, AvailableSlot{
				Time:       t,
				LocationID: def.LocationID,
				Location:   s.locationByID(ctx, def.LocationID),
			})
		}
	}
	return day, nil
}
