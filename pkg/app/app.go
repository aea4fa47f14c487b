package app

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/planmate/pkg/affirm"
	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/task"
	"tableflip.dev/planmate/pkg/timeutil"
)

// Service provides high-level operations over planner state. It wraps
// persistence so CLIs and UIs can share logic. Every mutation rewrites the
// affected snapshot in full before returning; the caller never sees a
// half-written collection.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Tasks returns the current task collection snapshot.
func (s *Service) Tasks() ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Tasks(), nil
}

// AddTask creates an unscheduled task on the calendar day of date. A title
// that is empty after trimming is a silent no-op: no record is created and
// nothing is persisted.
func (s *Service) AddTask(title, description string, date time.Time) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}
	t := task.New(title, strings.TrimSpace(description), date)
	tasks := append(s.Persistence.Tasks(), t)
	if err := s.Persistence.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return t, nil
}

// AddScheduledTask creates a task that starts life on the schedule. This is
// the scheduling-form path: a start time is required, the end time optional.
func (s *Service) AddScheduledTask(title string, date time.Time, startTime, endTime string) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}
	if _, _, err := timeutil.ParseClock(startTime); err != nil {
		return nil, err
	}
	if endTime != "" {
		if _, _, err := timeutil.ParseClock(endTime); err != nil {
			return nil, err
		}
	}
	t := task.New(title, "", date)
	t.StartTime = startTime
	t.EndTime = endTime
	tasks := append(s.Persistence.Tasks(), t)
	if err := s.Persistence.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return t, nil
}

// ToggleCompletion flips the completion flag of the task with the given id.
// Unknown ids are a no-op.
func (s *Service) ToggleCompletion(id string) (*task.Task, error) {
	return s.update(id, func(t *task.Task) {
		t.Completed = !t.Completed
	})
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (s *Service) DeleteTask(id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	tasks := s.Persistence.Tasks()
	kept := make([]*task.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return nil
	}
	return s.Persistence.SaveTasks(kept)
}

// AssignTime sets start and end times on the task with the given id, moving
// it onto the schedule. Unknown ids are a no-op.
func (s *Service) AssignTime(id, startTime, endTime string) (*task.Task, error) {
	if _, _, err := timeutil.ParseClock(startTime); err != nil {
		return nil, err
	}
	if endTime != "" {
		if _, _, err := timeutil.ParseClock(endTime); err != nil {
			return nil, err
		}
	}
	return s.update(id, func(t *task.Task) {
		t.StartTime = startTime
		t.EndTime = endTime
	})
}

// ClearTime removes start and end times, returning the task to the
// unscheduled set. Unknown ids are a no-op.
func (s *Service) ClearTime(id string) (*task.Task, error) {
	return s.update(id, func(t *task.Task) {
		t.StartTime = ""
		t.EndTime = ""
	})
}

// update applies fn to the matching task and persists the full collection.
func (s *Service) update(id string, fn func(*task.Task)) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	tasks := s.Persistence.Tasks()
	t := agenda.ByID(tasks, id)
	if t == nil {
		return nil, nil
	}
	fn(t)
	if err := s.Persistence.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return t, nil
}

// Diary returns the full diary mapping snapshot.
func (s *Service) Diary() (map[string]string, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Diary(), nil
}

// Entry returns the diary text for the calendar day of date, empty string
// when absent.
func (s *Service) Entry(date time.Time) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	return s.Persistence.Diary()[timeutil.DayKey(date)], nil
}

// SetEntry overwrites the diary text for the calendar day of date and
// persists the full mapping.
func (s *Service) SetEntry(date time.Time, text string) error {
	return s.SetEntryForDay(timeutil.DayKey(date), text)
}

// SetEntryForDay is SetEntry keyed directly by day key, for callers that
// already hold one (the diary autosave session does).
func (s *Service) SetEntryForDay(day, text string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	entries := s.Persistence.Diary()
	entries[day] = text
	return s.Persistence.SaveDiary(entries)
}

// AffirmationFor returns the affirmation bound to the calendar day of date.
// The first visit computes the deterministic pick and stores it; later visits
// return the stored selection, so the phrase is stable across sessions.
func (s *Service) AffirmationFor(date time.Time) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	day := timeutil.DayKey(date)
	if saved, ok := s.Persistence.Affirmation(day); ok {
		return saved, nil
	}
	phrase := affirm.Pick(day)
	if err := s.Persistence.SetAffirmation(day, phrase); err != nil {
		return "", err
	}
	return phrase, nil
}

// RefreshAffirmation overwrites the day's selection with a random phrase.
func (s *Service) RefreshAffirmation(date time.Time) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	day := timeutil.DayKey(date)
	phrase := affirm.Random()
	if err := s.Persistence.SetAffirmation(day, phrase); err != nil {
		return "", err
	}
	return phrase, nil
}
