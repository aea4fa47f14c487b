package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/planmate/pkg/agenda"
	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/store"
)

// Remove deletes a task by id.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	if agenda.ByID(n.Persistence.Tasks(), n.ID) == nil {
		fmt.Printf("no task with id %q\n", n.ID)
		return nil
	}

	svc := &app.Service{Persistence: n.Persistence}
	if err := svc.DeleteTask(n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
