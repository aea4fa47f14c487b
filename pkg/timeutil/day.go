// Package timeutil holds the calendar conventions shared by every view:
// local-time day keys, Sunday-first weeks, and HH:MM clock strings.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DayKeyLayout is the canonical day key format. The rendered text is
	// identical to what JavaScript's Date.toDateString() produces, which is
	// the key format persisted snapshots have always used.
	DayKeyLayout = "Mon Jan 02 2006"

	// ClockLayout is the 24-hour wall-clock format carried on scheduled tasks.
	ClockLayout = "15:04"
)

// DayKey returns the canonical string for the calendar day containing t,
// evaluated in local time. Day identity is always this string; numeric
// timestamp ranges are never compared.
func DayKey(t time.Time) string {
	return t.Local().Format(DayKeyLayout)
}

// ParseDayKey is the inverse of DayKey. The result is midnight local time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight on the Sunday of the week containing ref.
func StartOfWeek(ref time.Time) time.Time {
	day := StartOfDay(ref)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekOf returns the seven days of the calendar week containing ref,
// Sunday first.
func WeekOf(ref time.Time) [7]time.Time {
	var week [7]time.Time
	start := StartOfWeek(ref)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(v string) (hour, minute int, err error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", v, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", v, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", v)
	}
	return hour, minute, nil
}

// ClockHour returns the integer hour of a "HH:MM" string, false when the
// string is empty or malformed.
func ClockHour(v string) (int, bool) {
	hour, _, err := ParseClock(v)
	if err != nil {
		return 0, false
	}
	return hour, true
}

// FormatClock12 renders an hour of the day as the 12-hour label the schedule
// view shows, for example "12:00 AM", "9:00 AM", or "3:00 PM".
func FormatClock12(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
