package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/track"
	"tableflip.dev/planmate/pkg/store"
)

func addTracker(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "tracker",
		Aliases: []string{"track", "week"},
		Short:   "show the weekly tracker",
		Example: `
planmate tracker
planmate tracker --on="2026-3-1"
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
			s := track.Track{
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
