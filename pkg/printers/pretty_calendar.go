package printers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/glyph"
	"tableflip.dev/planmate/pkg/task"
	"tableflip.dev/planmate/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid. Days that carry content (tasks or diary
// text) are bold and marked; the footer lists completed/total per marked day.
func (pp *PrettyPrint) Calendar(on time.Time, tasks []*task.Task, entries map[string]string) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	days := DaysIn(then)

	marked := make([]bool, days)
	stats := make([]agenda.Stats, days)
	for i := 0; i < days; i++ {
		day := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.Local)
		marked[i] = agenda.HasContent(tasks, entries, day)
		stats[i] = agenda.CompletionStats(tasks, day)
	}

	pp.printMonthGrid(then, marked)

	f := color.New(color.Faint)
	for i := 0; i < days; i++ {
		if stats[i].Total == 0 {
			continue
		}
		_, _ = f.Printf("%2d %s %d/%d\n", i+1, glyph.Marker.String(), stats[i].Completed, stats[i].Total)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) printMonthGrid(then time.Time, marked []bool) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	hf := color.New(color.Faint, color.Underline)
	_, _ = hf.Println("Su Mo Tu We Th Fr Sa")

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	now := time.Now()
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(marked) && marked[i] {
			printer = l2
		}
		day := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.Local)
		if timeutil.SameDay(day, now) {
			printer = today
		}
		_, _ = printer.Printf("%2d", i+1)
		fmt.Print(" ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// Schedule prints the 24-hour grid for a day plus its unscheduled set.
func (pp *PrettyPrint) Schedule(tasks []*task.Task, on time.Time) {
	buckets := agenda.ByHour(tasks, on)

	p := color.New()
	h := color.New(color.Faint)
	e := color.New(color.Faint, color.Italic)

	for hour := 0; hour < 24; hour++ {
		_, _ = h.Printf("%8s  ", timeutil.FormatClock12(hour))
		slot := buckets[hour]
		if len(slot) == 0 {
			_, _ = e.Println("-")
			continue
		}
		for i, t := range slot {
			if i > 0 {
				_, _ = p.Print(strings.Repeat(" ", 10))
			}
			title := t.Title
			if t.Completed {
				title = glyph.Strike(title)
			}
			_, _ = p.Printf("%s %s", glyph.ForCompleted(t.Completed).String(), title)
			if t.EndTime != "" {
				_, _ = h.Printf("  until %s", t.EndTime)
			}
			_, _ = p.Println("")
		}
	}

	unscheduled := agenda.Unscheduled(tasks, on)
	if len(unscheduled) == 0 {
		fmt.Println("")
		return
	}
	pp.NewLine()
	pp.Title("Unscheduled")
	pp.Tasks(unscheduled...)
}

// Tracker prints the weekly aggregate: one bar per day, totals, and the
// overall completion rate.
func (pp *PrettyPrint) Tracker(week agenda.Week) {
	p := color.New()
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	now := time.Now()
	for _, d := range week.Days {
		name := d.Day.Format("Mon")
		if timeutil.SameDay(d.Day, now) {
			_, _ = b.Printf("%s  ", name)
		} else {
			_, _ = p.Printf("%s  ", name)
		}
		_, _ = p.Printf("%s  ", bar(d.Stats))
		_, _ = f.Printf("%d/%d\n", d.Completed, d.Total)
	}

	pp.NewLine()
	_, _ = b.Printf("%d of %d tasks completed this week", week.Completed, week.Total)
	_, _ = f.Printf(" - %d%%\n", int(math.Round(week.OverallRate())))
	_, _ = p.Println(Motivation(week.OverallRate()))
	fmt.Println("")
}

const barWidth = 10

func bar(stats agenda.Stats) string {
	if stats.Total == 0 {
		return strings.Repeat("·", barWidth)
	}
	filled := int(math.Round(stats.Rate() / 100 * barWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// Motivation maps an overall completion rate onto the tracker's message.
func Motivation(rate float64) string {
	switch {
	case rate >= 90:
		return "Outstanding! You're crushing your goals!"
	case rate >= 75:
		return "Excellent work! Keep up the momentum!"
	case rate >= 60:
		return "Good progress! You're on the right track!"
	case rate >= 40:
		return "Making steady progress! Keep going!"
	case rate >= 20:
		return "Every step counts! You've got this!"
	default:
		return "Fresh start! Today is full of possibilities!"
	}
}

// DaysIn returns the length of the local calendar month containing then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartDay returns the weekday of the first of the local calendar month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local).Weekday()
}
