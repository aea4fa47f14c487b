package agenda

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/planmate/pkg/task"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	on, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return on
}

func TestOnDayPreservesCollectionOrder(t *testing.T) {
	on := day(t, "2024-03-01")
	first := task.New("first", "", on)
	other := task.New("elsewhere", "", on.AddDate(0, 0, 1))
	second := task.New("second", "", on.Add(22*time.Hour))

	got := OnDay([]*task.Task{first, other, second}, on)
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Fatalf("order broken: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestCompletionStats(t *testing.T) {
	on := day(t, "2024-03-01")
	a := task.New("a", "", on)
	b := task.New("b", "", on)
	c := task.New("c", "", on)
	a.Completed = true
	b.Completed = true
	tasks := []*task.Task{a, b, c}

	stats := CompletionStats(tasks, on)
	if stats.Completed != 2 || stats.Total != 3 {
		t.Fatalf("stats = %+v, want 2/3", stats)
	}
	if stats.Remaining() != 1 {
		t.Fatalf("remaining = %d", stats.Remaining())
	}
	// Full precision internally; display rounds this to 67%.
	if got := stats.Rate(); math.Abs(got-200.0/3.0) > 1e-9 {
		t.Fatalf("rate = %v", got)
	}
	if got := int(math.Round(stats.Rate())); got != 67 {
		t.Fatalf("rounded rate = %d, want 67", got)
	}
}

func TestRateZeroWhenEmpty(t *testing.T) {
	if got := (Stats{}).Rate(); got != 0 {
		t.Fatalf("empty rate = %v, want 0", got)
	}
}

func TestHasContent(t *testing.T) {
	on := day(t, "2024-03-01")
	blank := day(t, "2024-03-02")
	written := day(t, "2024-03-03")

	tasks := []*task.Task{task.New("something", "", on)}
	diary := map[string]string{
		"Sat Mar 02 2024": "   \n\t ",
		"Sun Mar 03 2024": "went for a walk",
	}

	if !HasContent(tasks, diary, on) {
		t.Fatal("day with a task should have content")
	}
	if HasContent(tasks, diary, blank) {
		t.Fatal("whitespace-only diary entry is not content")
	}
	if !HasContent(tasks, diary, written) {
		t.Fatal("day with diary text should have content")
	}
}

func TestWeeklyTotalsMatchDailyStats(t *testing.T) {
	ref := day(t, "2024-03-01") // Friday; week is Feb 25 - Mar 2.
	var tasks []*task.Task

	sun := task.New("sun", "", day(t, "2024-02-25"))
	sun.Completed = true
	tasks = append(tasks, sun)

	for i := 0; i < 3; i++ {
		tk := task.New("fri", "", ref)
		if i < 2 {
			tk.Completed = true
		}
		tasks = append(tasks, tk)
	}

	// Outside the week; must not count.
	tasks = append(tasks, task.New("next week", "", day(t, "2024-03-04")))

	week := Weekly(tasks, ref)

	var completed, total int
	for _, d := range week.Days {
		stats := CompletionStats(tasks, d.Day)
		if stats != d.Stats {
			t.Fatalf("day %v stats %+v != %+v", d.Day, d.Stats, stats)
		}
		completed += stats.Completed
		total += stats.Total
	}
	if week.Completed != completed || week.Total != total {
		t.Fatalf("totals %d/%d, want %d/%d", week.Completed, week.Total, completed, total)
	}
	if week.Total != 4 || week.Completed != 3 {
		t.Fatalf("week totals = %d/%d, want 3/4", week.Completed, week.Total)
	}
	if got := week.OverallRate(); math.Abs(got-75) > 1e-9 {
		t.Fatalf("overall rate = %v, want 75", got)
	}
}

func TestWeeklyEmptyWeekRateIsZero(t *testing.T) {
	week := Weekly(nil, day(t, "2024-03-01"))
	if week.Total != 0 {
		t.Fatalf("empty week total = %d", week.Total)
	}
	if got := week.OverallRate(); got != 0 {
		t.Fatalf("empty week rate = %v, want 0", got)
	}
}

func TestScheduleScenario(t *testing.T) {
	on := day(t, "2024-03-01")
	report := task.New("Write report", "", on)
	tasks := []*task.Task{report}

	if got := ByHour(tasks, on); len(got) != 0 {
		t.Fatalf("unscheduled task bucketed: %v", got)
	}
	unscheduled := Unscheduled(tasks, on)
	if len(unscheduled) != 1 || unscheduled[0].ID != report.ID {
		t.Fatalf("unscheduled set = %v", unscheduled)
	}

	report.StartTime = "14:00"

	buckets := ByHour(tasks, on)
	if len(buckets[14]) != 1 || buckets[14][0].ID != report.ID {
		t.Fatalf("hour 14 bucket = %v", buckets[14])
	}
	if len(Unscheduled(tasks, on)) != 0 {
		t.Fatal("scheduled task still in unscheduled set")
	}
	scheduled := Scheduled(tasks, on)
	if len(scheduled) != 1 || scheduled[0].ID != report.ID {
		t.Fatalf("scheduled set = %v", scheduled)
	}
}

func TestByID(t *testing.T) {
	on := day(t, "2024-03-01")
	tk := task.New("find me", "", on)
	tasks := []*task.Task{task.New("other", "", on), tk}

	if got := ByID(tasks, tk.ID); got != tk {
		t.Fatalf("ByID returned %v", got)
	}
	if got := ByID(tasks, "missing"); got != nil {
		t.Fatalf("missing id returned %v", got)
	}
}
