package availability

// BreakWindow is an interval in minutes-since-midnight excluded from slot
// generation, typically the lunch break.
type BreakWindow struct {
	Start int
	End   int
}

// GenerateSlots expands a working-hour interval into discrete bookable
// start times at fixed increments. Candidates run while their start time
// is inside the interval; the last consultation may spill past the
// interval's end. A window shorter than one slot yields an empty
// sequence. Deterministic and side-effect free.
//
// The break filter engages only when the working window itself reaches
// into the break. A candidate is then dropped when its interval starts
// inside the break, ends inside it, or spans it fully.
func GenerateSlots(startTime, endTime string, durationMinutes int, lunch *BreakWindow) ([]string, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}
	if end-start < durationMinutes {
		return nil, nil
	}

	applyLunch := lunch != nil && start < lunch.End && end > lunch.Start

	var slots []string
	for t := start; t < end; t += durationMinutes {
		if applyLunch && t < lunch.End && t+durationMinutes > lunch.Start {
			continue
		}
		slots = append(slots, formatClock(t))
	}
	return slots, nil
}
