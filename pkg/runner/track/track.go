package track

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

// Track prints the weekly tracker for the week containing On.
type Track struct {
	On          time.Time
	Persistence store.Persistence
}

func (n *Track) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	week := agenda.Weekly(n.Persistence.Tasks(), n.On)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Week of %s", timeutil.DayKey(week.Days[0].Day)))
	pp.Tracker(week)
	return nil
}
