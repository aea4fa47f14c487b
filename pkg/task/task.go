package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/planmate/pkg/timeutil"
)

// New creates an unscheduled task belonging to the calendar day of date.
func New(title, description string, date time.Time) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        Timestamp{Time: date},
		CreatedAt:   Timestamp{Time: time.Now()},
	}
}

// Task is one task record. The whole collection is persisted as a single
// JSON array; the field names match the snapshot shape on disk.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Date        Timestamp `json:"date"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// OnDay reports whether the task belongs to the calendar day of then.
func (t *Task) OnDay(then time.Time) bool {
	return t.Date.SameDay(then)
}

// Scheduled reports whether the task carries a start time.
func (t *Task) Scheduled() bool {
	return t.StartTime != ""
}

// StartHour returns the integer hour of the start time, false when the task
// is unscheduled or the stored value does not parse.
func (t *Task) StartHour() (int, bool) {
	if t.StartTime == "" {
		return 0, false
	}
	return timeutil.ClockHour(t.StartTime)
}

// TimeRange renders the scheduled window, for example "14:00 - 15:00",
// or just the start time when no end is set.
func (t *Task) TimeRange() string {
	switch {
	case t.StartTime != "" && t.EndTime != "":
		return fmt.Sprintf("%s - %s", t.StartTime, t.EndTime)
	case t.StartTime != "":
		return t.StartTime
	default:
		return ""
	}
}
