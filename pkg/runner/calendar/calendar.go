package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planmate/pkg/printers"
	"tableflip.dev/planmate/pkg/store"
)

// Calendar prints the month grid for On, marking days that carry tasks or
// diary text.
type Calendar struct {
	On          time.Time
	Persistence store.Persistence
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(n.On, n.Persistence.Tasks(), n.Persistence.Diary())
	return nil
}
