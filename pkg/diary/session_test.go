package diary

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	saves []string
	times []time.Time
	fail  bool
}

func (r *recorder) save(day, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("storage unavailable")
	}
	r.saves = append(r.saves, text)
	r.times = append(r.times, time.Now())
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return ""
	}
	return r.saves[len(r.saves)-1]
}

func TestAutosaveAfterQuietPeriod(t *testing.T) {
	r := &recorder{}
	s := NewSession("Fri Mar 01 2024", "", r.save, WithQuietPeriod(50*time.Millisecond))
	defer s.Close()

	s.Edit("Hello")
	if !s.Dirty() {
		t.Fatal("edit should mark the session dirty")
	}

	deadline := time.Now().Add(time.Second)
	for s.Dirty() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Dirty() {
		t.Fatal("autosave never fired")
	}
	if got := r.last(); got != "Hello" {
		t.Fatalf("saved %q", got)
	}
	if _, ok := s.LastSaved(); !ok {
		t.Fatal("last-saved indicator not set")
	}
}

func TestEditRestartsQuietPeriod(t *testing.T) {
	// Edits at t=0 and t=quiet/2: no save may occur before the second edit's
	// full quiet period has elapsed.
	const quiet = 120 * time.Millisecond
	r := &recorder{}
	s := NewSession("Fri Mar 01 2024", "", r.save, WithQuietPeriod(quiet))
	defer s.Close()

	start := time.Now()
	s.Edit("first")
	time.Sleep(quiet / 2)
	s.Edit("first second")
	secondEdit := time.Now()

	deadline := time.Now().Add(time.Second)
	for s.Dirty() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Dirty() {
		t.Fatal("autosave never fired")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) != 1 {
		t.Fatalf("saved %d times, want 1", len(r.saves))
	}
	if r.saves[0] != "first second" {
		t.Fatalf("saved %q", r.saves[0])
	}
	if elapsed := r.times[0].Sub(secondEdit); elapsed < quiet-10*time.Millisecond {
		t.Fatalf("save fired %v after second edit, before the quiet period", elapsed)
	}
	if elapsed := r.times[0].Sub(start); elapsed < quiet+quiet/2-10*time.Millisecond {
		t.Fatalf("save fired %v after first edit; debounce did not restart", elapsed)
	}
}

func TestSaveNowCommitsImmediately(t *testing.T) {
	r := &recorder{}
	s := NewSession("Fri Mar 01 2024", "", r.save, WithQuietPeriod(time.Hour))
	defer s.Close()

	s.Edit("typed")
	if err := s.SaveNow(); err != nil {
		t.Fatalf("save now: %v", err)
	}
	if s.Dirty() {
		t.Fatal("manual save should clear dirty")
	}
	if r.count() != 1 || r.last() != "typed" {
		t.Fatalf("saves = %v", r.saves)
	}

	// Nothing pending afterwards; no second save sneaks in.
	time.Sleep(20 * time.Millisecond)
	if r.count() != 1 {
		t.Fatalf("unexpected extra save, %d total", r.count())
	}
}

func TestSaveNowWhenCleanIsNoOp(t *testing.T) {
	r := &recorder{}
	s := NewSession("Fri Mar 01 2024", "seeded", r.save)
	defer s.Close()

	if err := s.SaveNow(); err != nil {
		t.Fatalf("save now: %v", err)
	}
	if r.count() != 0 {
		t.Fatal("clean session must not write")
	}
}

func TestFailedSaveStaysDirty(t *testing.T) {
	r := &recorder{fail: true}
	s := NewSession("Fri Mar 01 2024", "", r.save, WithQuietPeriod(time.Hour))
	defer s.Close()

	s.Edit("will not land")
	if err := s.SaveNow(); err == nil {
		t.Fatal("expected save error")
	}
	if !s.Dirty() {
		t.Fatal("failed save must leave the session dirty")
	}
	if _, ok := s.LastSaved(); ok {
		t.Fatal("last-saved indicator must stay unset")
	}

	// Storage recovers; the next save clears the state.
	r.fail = false
	if err := s.SaveNow(); err != nil {
		t.Fatalf("save now: %v", err)
	}
	if s.Dirty() {
		t.Fatal("recovered save should clear dirty")
	}
}

func TestCloseCancelsPendingAutosave(t *testing.T) {
	r := &recorder{}
	s := NewSession("Fri Mar 01 2024", "", r.save, WithQuietPeriod(30*time.Millisecond))

	s.Edit("abandoned")
	s.Close()

	time.Sleep(100 * time.Millisecond)
	if r.count() != 0 {
		t.Fatal("closed session must not save")
	}
}

func TestWordCount(t *testing.T) {
	cases := map[string]int{
		"":                    0,
		"   \n\t":             0,
		"Hello world":         2,
		"  Hello   world  ":   2,
		"one\ntwo\tthree four": 4,
	}
	for in, want := range cases {
		if got := WordCount(in); got != want {
			t.Fatalf("WordCount(%q) = %d, want %d", in, got, want)
		}
	}
}
