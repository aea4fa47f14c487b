package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/printers"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/timeutil"
)

// Schedule assigns a start (and optional end) time to a task, or prints the
// day's hour grid when no id is given.
type Schedule struct {
	ID        string
	StartTime string
	EndTime   string
	On        time.Time

	Persistence store.Persistence
}

func (n *Schedule) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not schedule, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	svc := &app.Service{Persistence: n.Persistence}

	if n.ID != "" {
		t, err := svc.AssignTime(n.ID, n.StartTime, n.EndTime)
		if err != nil {
			return err
		}
		if t == nil {
			fmt.Printf("no task with id %q\n", n.ID)
			return nil
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(timeutil.DayKey(n.On))
	pp.Schedule(n.Persistence.Tasks(), n.On)
	return nil
}

// Unschedule clears a task's start and end times.
type Unschedule struct {
	ID          string
	Persistence store.Persistence
}

func (n *Unschedule) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not unschedule, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.ClearTime(n.ID)
	if err != nil {
		return err
	}
	if t == nil {
		fmt.Printf("no task with id %q\n", n.ID)
		return nil
	}
	fmt.Printf("%s is back in the unscheduled list\n", t.Title)
	return nil
}
