package diary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planmate/pkg/app"
	diarysession "tableflip.dev/planmate/pkg/diary"
	"tableflip.dev/planmate/pkg/printers"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/timeutil"
)

// Diary shows a day's entry, or overwrites it when Text is set.
type Diary struct {
	On   time.Time
	Text string
	Set  bool

	Persistence store.Persistence
}

func (n *Diary) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open diary, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	svc := &app.Service{Persistence: n.Persistence}
	day := timeutil.DayKey(n.On)

	var savedAt time.Time
	var saved bool
	if n.Set {
		current, err := svc.Entry(n.On)
		if err != nil {
			return err
		}
		session := diarysession.NewSession(day, current, svc.SetEntryForDay)
		defer session.Close()
		session.Edit(n.Text)
		if err := session.SaveNow(); err != nil {
			return err
		}
		savedAt, saved = session.LastSaved()
	}

	text, err := svc.Entry(n.On)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Diary(day, text)
	if saved {
		pp.LastSaved(savedAt)
	}
	return nil
}
