package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/get"
	"tableflip.dev/planmate/pkg/store"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "today",
		Aliases: []string{"get", "day"},
		Short:   "show a day's tasks and progress",
		Example: `
planmate today
planmate today --on="2026-3-1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if on != nil {
				s.On = *on
			} else {
				s.On = time.Now()
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
