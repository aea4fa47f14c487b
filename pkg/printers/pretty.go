package printers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/diary"
	"tableflip.dev/planmate/pkg/glyph"
	"tableflip.dev/planmate/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Summary prints the day's completion line, for example
// "2 of 3 completed - 67% progress". Rounding happens here and only here.
func (pp *PrettyPrint) Summary(stats agenda.Stats) {
	if stats.Total == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no tasks for this day")
		return
	}
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Printf("%d of %d completed", stats.Completed, stats.Total)
	_, _ = f.Printf(" - %d%% progress, %d remaining\n", int(math.Round(stats.Rate())), stats.Remaining())
}

// Tasks prints a day's task list in collection order.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		title := t.Title
		if t.Completed {
			title = glyph.Strike(title)
		}
		row := []interface{}{glyph.ForCompleted(t.Completed).String(), title, t.TimeRange(), t.Description}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Diary prints an entry with its word count badge.
func (pp *PrettyPrint) Diary(day, text string) {
	pp.Title(day)
	if strings.TrimSpace(text) == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entry\n\n")
		return
	}
	fmt.Println(text)
	f := color.New(color.Faint)
	words := diary.WordCount(text)
	switch words {
	case 1:
		_, _ = f.Println("1 word")
	default:
		_, _ = f.Printf("%d words\n", words)
	}
	fmt.Println("")
}

// LastSaved prints the diary save indicator.
func (pp *PrettyPrint) LastSaved(at time.Time) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("saved %s\n", at.Format("15:04:05"))
}

// Affirmation prints the day's phrase.
func (pp *PrettyPrint) Affirmation(phrase string) {
	i := color.New(color.Italic)
	_, _ = i.Printf("%q\n", phrase)
}
