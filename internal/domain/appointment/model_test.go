package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusRescheduled, StatusRescheduled, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusNoShow, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusNoShow, StatusInProgress, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestOccupyingStatuses(t *testing.T) {
	occupying := map[string]bool{}
	for _, s := range OccupyingStatuses() {
		occupying[s] = true
	}
	for _, s := range []string{StatusScheduled, StatusRescheduled, StatusInProgress} {
		if !occupying[s] {
			t.Errorf("expected %s to occupy its slot", s)
		}
	}
	for _, s := range []string{StatusCompleted, StatusCancelled, StatusNoShow} {
		if occupying[s] {
			t.Errorf("expected %s to free its slot", s)
		}
	}
}
