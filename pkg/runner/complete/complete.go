package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/glyph"
	"tableflip.dev/planmate/pkg/store"
)

// Complete toggles a task's completion flag by id.
type Complete struct {
	ID          string
	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.ToggleCompletion(n.ID)
	if err != nil {
		return err
	}
	if t == nil {
		fmt.Printf("no task with id %q\n", n.ID)
		return nil
	}

	title := t.Title
	if t.Completed {
		title = glyph.Strike(title)
	}
	fmt.Printf("%s %s\n", glyph.ForCompleted(t.Completed).String(), title)
	return nil
}
