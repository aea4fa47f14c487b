package ui

import (
	"context"
	"errors"

	"tableflip.dev/planmate/pkg/app"
	"tableflip.dev/planmate/pkg/store"
	"tableflip.dev/planmate/pkg/ui"
)

// UI starts the interactive week view.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start ui, no persistence")
	}
	return ui.Do(ctx, &app.Service{Persistence: n.Persistence})
}
