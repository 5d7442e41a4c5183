package availability

import (
	"fmt"
	"time"
)

// Clock times are carried as "HH:MM" strings at the edges and as
// minutes-since-midnight integers internally.

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// minutesOf returns the minutes-since-midnight of t's wall clock.
func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
