// Package diary owns the editing session for one day's diary entry,
// including the autosave debounce.
package diary

import (
	"strings"
	"sync"
	"time"
)

// QuietPeriod is the window of inactivity after the last edit that triggers
// an autosave.
const QuietPeriod = 2 * time.Second

// SaveFunc commits the entry text for a day key to persistence.
type SaveFunc func(day, text string) error

// Session tracks one day's diary text between edits and saves. A session is
// Clean when the displayed text matches what was last persisted and Dirty
// otherwise. Each edit restarts the quiet-period timer; the timer firing or
// an explicit SaveNow moves the session back to Clean. A failed save leaves
// the session Dirty so the caller can show that the text never landed.
type Session struct {
	mu        sync.Mutex
	day       string
	text      string
	dirty     bool
	lastSaved time.Time
	hasSaved  bool
	quiet     time.Duration
	timer     *time.Timer
	save      SaveFunc
	closed    bool
}

// Option customises a session.
type Option func(*Session)

// WithQuietPeriod overrides the autosave quiet period.
func WithQuietPeriod(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.quiet = d
		}
	}
}

// NewSession opens an editing session for the given day key, seeded with the
// currently persisted text.
func NewSession(day, text string, save SaveFunc, opts ...Option) *Session {
	s := &Session{
		day:   day,
		text:  text,
		quiet: QuietPeriod,
		save:  save,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Edit replaces the session text, marks the session Dirty, and restarts the
// quiet-period timer. Debounce, not throttle: a pending timer is cancelled
// and a fresh full quiet period begins.
func (s *Session) Edit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.text = text
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.flush)
}

// SaveNow commits immediately, cancelling any pending autosave.
func (s *Session) SaveNow() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	return s.commitLocked()
}

// flush is the quiet-period timer callback.
func (s *Session) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = nil
	_ = s.commitLocked()
}

func (s *Session) commitLocked() error {
	if !s.dirty || s.closed {
		return nil
	}
	if err := s.save(s.day, s.text); err != nil {
		// Still dirty; the last-saved indicator keeps showing the old time.
		return err
	}
	s.dirty = false
	s.lastSaved = time.Now()
	s.hasSaved = true
	return nil
}

// Dirty reports whether the text has changed since the last successful save.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Text returns the current session text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Day returns the day key the session is bound to.
func (s *Session) Day() string {
	return s.day
}

// LastSaved returns the time of the last successful save in this session,
// false when nothing has been saved yet.
func (s *Session) LastSaved() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved, s.hasSaved
}

// Close cancels any pending autosave. Navigating away from the diary view
// must call this so no timer outlives the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// WordCount counts the non-empty whitespace-separated tokens of text.
// Derived on demand, never stored.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
