// Package ui is the interactive week view: a day pane on the left, the
// selected day's tasks on the right.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tui "github.com/marcusolsson/tui-go"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/glyph"
	"tableflip.dev/planmate/pkg/task"
	"tableflip.dev/planmate/pkg/timeutil"
)

func Do(ctx context.Context, service *app.Service) error {
	dTable := tui.NewTable(1, 0)

	days := tui.NewVBox(
		dTable,
		tui.NewSpacer(),
	)
	days.SetBorder(true)
	days.SetSizePolicy(tui.Preferred, tui.Expanding)

	tTable := tui.NewTable(1, 0)
	tTable.SetFocused(true)
	tTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Left/right arrows to navigate, ENTER toggles a task, ESC or 'q' to QUIT`)

	tasksView := tui.NewVBox(tTable)
	tasksView.SetBorder(true)
	tasksView.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(days, tasksView)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		service:   service,
		week:      timeutil.WeekOf(time.Now()),
		days:      dTable,
		daysTitle: "week",
		daysView:  days,
		tasks:     tTable,
		tasksView: tasksView,
	}
	if err := d.reload(); err != nil {
		return err
	}
	d.populateDays()

	tTable.OnItemActivated(func(t *tui.Table) {
		d.toggleSelected()
	})

	dTable.OnSelectionChanged(func(*tui.Table) {
		d.populateTasks()
	})

	u.SetKeybinding("Left", func() {
		d.focusDays()
	})

	u.SetKeybinding("Right", func() {
		d.focusTasks()
	})

	u.SetKeybinding("r", func() {
		_ = d.reload()
		d.populateDays()
		d.populateTasks()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populateTasks()
	d.focusTasks()

	// Redraw when another process rewrites the store.
	if service.Persistence != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if events, err := service.Persistence.Watch(watchCtx); err == nil {
			go func() {
				for range events {
					u.Update(func() {
						_ = d.reload()
						d.populateDays()
						d.populateTasks()
					})
				}
			}()
		}
	}

	if err := u.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	service *app.Service

	week     [7]time.Time
	snapshot []*task.Task
	current  []*task.Task

	dirty string

	days      *tui.Table
	daysTitle string
	daysView  *tui.Box

	tasks      *tui.Table
	tasksView  *tui.Box
	tasksTitle string
}

func (d *impl) reload() error {
	tasks, err := d.service.Tasks()
	if err != nil {
		return err
	}
	d.snapshot = tasks
	d.dirty = ""
	return nil
}

func (d *impl) focusDays() {
	d.days.SetFocused(true)
	d.daysView.SetTitle(strings.ToUpper(d.daysTitle))

	d.tasks.SetFocused(false)
	d.tasksView.SetTitle("")
}

func (d *impl) focusTasks() {
	d.days.SetFocused(false)
	d.daysView.SetTitle(d.daysTitle)

	d.tasks.SetFocused(true)
	d.tasksView.SetTitle(d.tasksTitle)
}

func (d *impl) selectedDay() time.Time {
	i := d.days.Selected()
	if i < 0 || i >= len(d.week) {
		i = 0
	}
	return d.week[i]
}

func (d *impl) populateDays() {
	selected := d.days.Selected()
	d.days.RemoveRows()

	for _, day := range d.week {
		stats := agenda.CompletionStats(d.snapshot, day)
		label := day.Format("Mon Jan 02")
		if stats.Total > 0 {
			label = fmt.Sprintf("%s  %d/%d", label, stats.Completed, stats.Total)
		}
		d.days.AppendRow(tui.NewLabel(label))
	}

	if selected < 0 || selected >= len(d.week) {
		selected = int(time.Now().Weekday())
	}
	d.days.Select(selected)
}

func (d *impl) populateTasks() {
	day := d.selectedDay()
	key := timeutil.DayKey(day)

	if d.dirty == key {
		return
	}
	d.tasks.RemoveRows()
	d.tasksTitle = key
	d.tasksView.SetTitle(key)

	d.current = agenda.OnDay(d.snapshot, day)
	for _, t := range d.current {
		d.tasks.AppendRow(tui.NewLabel(taskLabel(t)))
	}
	if len(d.current) > 0 {
		d.tasks.Select(0)
	}
	d.dirty = key
}

func (d *impl) toggleSelected() {
	i := d.tasks.Selected()
	if i < 0 || i >= len(d.current) {
		return
	}
	if _, err := d.service.ToggleCompletion(d.current[i].ID); err != nil {
		return
	}
	if err := d.reload(); err != nil {
		return
	}
	d.populateDays()
	d.populateTasks()
	if i < len(d.current) {
		d.tasks.Select(i)
	}
}

func taskLabel(t *task.Task) string {
	mark := glyph.ForCompleted(t.Completed).String()
	if r := t.TimeRange(); r != "" {
		return fmt.Sprintf("%s %s  %s", mark, t.Title, r)
	}
	return fmt.Sprintf("%s %s", mark, t.Title)
}
