package printers

import (
	"testing"
	"time"

	"tableflip.dev/planmate/pkg/agenda"
)

func TestMotivationTiers(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{100, "Outstanding! You're crushing your goals!"},
		{90, "Outstanding! You're crushing your goals!"},
		{80, "Excellent work! Keep up the momentum!"},
		{66.6, "Good progress! You're on the right track!"},
		{40, "Making steady progress! Keep going!"},
		{20, "Every step counts! You've got this!"},
		{0, "Fresh start! Today is full of possibilities!"},
	}
	for _, tc := range cases {
		if got := Motivation(tc.rate); got != tc.want {
			t.Fatalf("Motivation(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestDaysInUsesLocalCalendar(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.March, 2024, 31},
		{time.February, 2024, 29},
		{time.February, 2025, 28},
		{time.December, 2024, 31},
	}
	for _, tc := range cases {
		// 1 AM on the 1st is what Calendar hands in; the local month must
		// come back whole in every timezone.
		then := time.Date(tc.year, tc.month, 1, 1, 0, 0, 0, time.Local)
		if got := DaysIn(then); got != tc.want {
			t.Fatalf("DaysIn(%s %d) = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestStartDayUsesLocalCalendar(t *testing.T) {
	march := time.Date(2024, time.March, 1, 1, 0, 0, 0, time.Local)
	if got := StartDay(march); got != time.Friday {
		t.Fatalf("StartDay(March 2024) = %v, want Friday", got)
	}
	sept := time.Date(2024, time.September, 1, 1, 0, 0, 0, time.Local)
	if got := StartDay(sept); got != time.Sunday {
		t.Fatalf("StartDay(September 2024) = %v, want Sunday", got)
	}
}

func TestBar(t *testing.T) {
	if got := bar(agenda.Stats{}); got != "··········" {
		t.Fatalf("empty bar = %q", got)
	}
	if got := bar(agenda.Stats{Completed: 3, Total: 3}); got != "██████████" {
		t.Fatalf("full bar = %q", got)
	}
	if got := bar(agenda.Stats{Completed: 1, Total: 2}); got != "█████░░░░░" {
		t.Fatalf("half bar = %q", got)
	}
}
