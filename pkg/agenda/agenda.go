// Package agenda derives the date-bucketed views every surface renders:
// per-day task lists, completion stats, weekly aggregates, and the hourly
// schedule. Everything here is a pure function over a snapshot passed in by
// the caller; nothing owns state.
package agenda

import (
	"strings"
	"time"

	"tableflip.dev/planmate/pkg/task"
	"tableflip.dev/planmate/pkg/timeutil"
)

// OnDay returns the tasks belonging to the calendar day of then, in
// collection order.
func OnDay(tasks []*task.Task, then time.Time) []*task.Task {
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.OnDay(then) {
			out = append(out, t)
		}
	}
	return out
}

// Stats counts completion over a set of tasks.
type Stats struct {
	Completed int
	Total     int
}

// Rate returns the completion percentage at full precision, 0 when there are
// no tasks. Rounding happens only at display time.
func (s Stats) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// Remaining returns the count of incomplete tasks.
func (s Stats) Remaining() int {
	return s.Total - s.Completed
}

// CompletionStats counts the tasks on the calendar day of then.
func CompletionStats(tasks []*task.Task, then time.Time) Stats {
	var s Stats
	for _, t := range OnDay(tasks, then) {
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// HasContent reports whether a day carries anything worth marking on the
// calendar: at least one task, or a diary entry with non-whitespace text.
func HasContent(tasks []*task.Task, diary map[string]string, then time.Time) bool {
	if len(OnDay(tasks, then)) > 0 {
		return true
	}
	return strings.TrimSpace(diary[timeutil.DayKey(then)]) != ""
}

// DayStat pairs a calendar day with its completion stats.
type DayStat struct {
	Day time.Time
	Stats
}

// Week is the weekly tracker aggregate: per-day stats for a Sunday-first
// calendar week plus totals across the seven days.
type Week struct {
	Days      [7]DayStat
	Completed int
	Total     int
}

// OverallRate returns the whole-week completion percentage at full precision,
// 0 when the week holds no tasks.
func (w Week) OverallRate() float64 {
	return Stats{Completed: w.Completed, Total: w.Total}.Rate()
}

// Weekly computes the tracker aggregate for the week containing ref.
func Weekly(tasks []*task.Task, ref time.Time) Week {
	var w Week
	for i, day := range timeutil.WeekOf(ref) {
		stats := CompletionStats(tasks, day)
		w.Days[i] = DayStat{Day: day, Stats: stats}
		w.Completed += stats.Completed
		w.Total += stats.Total
	}
	return w
}

// ByHour buckets the day's scheduled tasks by the integer hour of their start
// time. Tasks without a parseable start time are excluded; see Unscheduled.
func ByHour(tasks []*task.Task, then time.Time) map[int][]*task.Task {
	buckets := make(map[int][]*task.Task)
	for _, t := range OnDay(tasks, then) {
		hour, ok := t.StartHour()
		if !ok {
			continue
		}
		buckets[hour] = append(buckets[hour], t)
	}
	return buckets
}

// Scheduled returns the day's tasks that carry a start time, in collection
// order.
func Scheduled(tasks []*task.Task, then time.Time) []*task.Task {
	out := make([]*task.Task, 0)
	for _, t := range OnDay(tasks, then) {
		if t.Scheduled() {
			out = append(out, t)
		}
	}
	return out
}

// Unscheduled returns the day's tasks without a start time, in collection
// order.
func Unscheduled(tasks []*task.Task, then time.Time) []*task.Task {
	out := make([]*task.Task, 0)
	for _, t := range OnDay(tasks, then) {
		if !t.Scheduled() {
			out = append(out, t)
		}
	}
	return out
}

// ByID returns the task with the given id, nil when absent.
func ByID(tasks []*task.Task, id string) *task.Task {
	for _, t := range tasks {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}
