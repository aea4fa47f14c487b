package affirm

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

// Affirm prints the day's affirmation, minting and storing one on first view.
// Refresh replaces it with a random pick.
type Affirm struct {
	On      time.Time
	Refresh bool

	Persistence store.Persistence
}

func (n *Affirm) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not affirm, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	svc := &app.Service{Persistence: n.Persistence}

	var phrase string
	var err error
	if n.Refresh {
		phrase, err = svc.RefreshAffirmation(n.On)
	} else {
		phrase, err = svc.AffirmationFor(n.On)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(timeutil.DayKey(n.On))
	pp.Affirmation(phrase)
	fmt.Println("")
	return nil
}
