package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/printers"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/timeutil"
)

// Add creates a task and reprints the day it landed on.
type Add struct {
	Title       string
	Description string
	On          time.Time
	StartTime   string
	EndTime     string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	svc := &app.Service{Persistence: n.Persistence}

	var err error
	if n.StartTime != "" {
		_, err = svc.AddScheduledTask(n.Title, n.On, n.StartTime, n.EndTime)
	} else {
		_, err = svc.AddTask(n.Title, n.Description, n.On)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	tasks := n.Persistence.Tasks()
	pp.Title(timeutil.DayKey(n.On))
	pp.Summary(agenda.CompletionStats(tasks, n.On))
	pp.Tasks(agenda.OnDay(tasks, n.On)...)

	return nil
}
