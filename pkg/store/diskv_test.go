package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/planmate/pkg/task"
)

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func TestTasksSnapshotRoundTrip(t *testing.T) {
	p := load(t)

	if got := p.Tasks(); len(got) != 0 {
		t.Fatalf("fresh store has %d tasks", len(got))
	}

	on := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	one := task.New("Write report", "", on)
	two := task.New("Review notes", "with coffee", on)
	two.StartTime = "14:00"

	if err := p.SaveTasks([]*task.Task{one, two}); err != nil {
		t.Fatalf("save tasks: %v", err)
	}

	got := p.Tasks()
	if len(got) != 2 {
		t.Fatalf("loaded %d tasks, want 2", len(got))
	}
	if got[0].ID != one.ID || got[1].ID != two.ID {
		t.Fatal("collection order not preserved")
	}
	if got[1].StartTime != "14:00" {
		t.Fatalf("start time lost: %q", got[1].StartTime)
	}
}

func TestDiarySnapshotRoundTrip(t *testing.T) {
	p := load(t)

	if got := p.Diary(); len(got) != 0 {
		t.Fatalf("fresh store has %d diary entries", len(got))
	}

	entries := map[string]string{"Fri Mar 01 2024": "Hello world"}
	if err := p.SaveDiary(entries); err != nil {
		t.Fatalf("save diary: %v", err)
	}

	got := p.Diary()
	if got["Fri Mar 01 2024"] != "Hello world" {
		t.Fatalf("diary entry = %q", got["Fri Mar 01 2024"])
	}
}

func TestAffirmationPerDayKeys(t *testing.T) {
	p := load(t)

	if _, ok := p.Affirmation("Fri Mar 01 2024"); ok {
		t.Fatal("fresh store should have no affirmation")
	}
	if err := p.SetAffirmation("Fri Mar 01 2024", "phrase one"); err != nil {
		t.Fatalf("set affirmation: %v", err)
	}
	if err := p.SetAffirmation("Sat Mar 02 2024", "phrase two"); err != nil {
		t.Fatalf("set affirmation: %v", err)
	}

	got, ok := p.Affirmation("Fri Mar 01 2024")
	if !ok || got != "phrase one" {
		t.Fatalf("affirmation = %q, %v", got, ok)
	}
	got, ok = p.Affirmation("Sat Mar 02 2024")
	if !ok || got != "phrase two" {
		t.Fatalf("affirmation = %q, %v", got, ok)
	}
}

func TestMalformedSnapshotsFallBackEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasks"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "diary"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(testConfig(dir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if got := p.Tasks(); len(got) != 0 {
		t.Fatalf("malformed tasks snapshot produced %d tasks", len(got))
	}
	if got := p.Diary(); len(got) != 0 {
		t.Fatalf("malformed diary snapshot produced %d entries", len(got))
	}
}
