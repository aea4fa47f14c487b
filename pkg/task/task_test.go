package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	on := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	got := New("Write report", "", on)

	if got.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if got.Completed {
		t.Fatal("new tasks start incomplete")
	}
	if got.Scheduled() {
		t.Fatal("new tasks start unscheduled")
	}
	if !got.OnDay(on) {
		t.Fatal("task should belong to its creation day")
	}
	if got.OnDay(on.AddDate(0, 0, 1)) {
		t.Fatal("task should not belong to the next day")
	}
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	on := time.Now()
	a := New("one", "", on)
	b := New("two", "", on)
	if a.ID == b.ID {
		t.Fatalf("expected unique ids, both %q", a.ID)
	}
}

func TestStartHour(t *testing.T) {
	tk := New("standup", "", time.Now())
	if _, ok := tk.StartHour(); ok {
		t.Fatal("unscheduled task has no start hour")
	}

	tk.StartTime = "14:00"
	hour, ok := tk.StartHour()
	if !ok || hour != 14 {
		t.Fatalf("start hour = %d, %v; want 14, true", hour, ok)
	}

	tk.StartTime = "garbage"
	if _, ok := tk.StartHour(); ok {
		t.Fatal("malformed start time should not bucket")
	}
}

func TestTimeRange(t *testing.T) {
	tk := New("standup", "", time.Now())
	if got := tk.TimeRange(); got != "" {
		t.Fatalf("unscheduled range = %q, want empty", got)
	}
	tk.StartTime = "14:00"
	if got := tk.TimeRange(); got != "14:00" {
		t.Fatalf("range = %q, want 14:00", got)
	}
	tk.EndTime = "15:30"
	if got := tk.TimeRange(); got != "14:00 - 15:30" {
		t.Fatalf("range = %q", got)
	}
}

func TestSnapshotShape(t *testing.T) {
	on := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	tk := New("Write report", "quarterly numbers", on)
	tk.StartTime = "14:00"

	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"id", "title", "completed", "date", "startTime", "createdAt"} {
		if _, ok := raw[field]; !ok {
			t.Fatalf("snapshot missing field %q: %s", field, data)
		}
	}
	if _, ok := raw["endTime"]; ok {
		t.Fatal("empty end time should be omitted")
	}

	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !back.Date.SameDay(on) {
		t.Fatalf("decoded date %v lost its day", back.Date)
	}
}
