package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/calendar"
	"tableflip.dev/planmate/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal", "month"},
		Short:   "show the month grid",
		Example: `
planmate calendar
planmate calendar --on="2026-12-1"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				Persistence: p,
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
