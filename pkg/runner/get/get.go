package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/printers"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/timeutil"
)

// Get prints a day's task list with its completion summary.
type Get struct {
	ShowID      bool
	On          time.Time
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	tasks := n.Persistence.Tasks()
	onDay := agenda.OnDay(tasks, n.On)

	pp.Title(timeutil.DayKey(n.On))
	pp.Summary(agenda.CompletionStats(tasks, n.On))
	pp.Tasks(onDay...)

	return nil
}
