package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/affirm"
	"tableflip.dev/planmate/pkg/store"
)

func addAffirm(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	refresh := false

	cmd := &cobra.Command{
		Use:   "affirm",
		Short: "show the day's affirmation",
		Long: `Show the affirmation for a day. The first view picks one and pins it
to the day; --refresh replaces it with a random pick.`,
		Example: `
planmate affirm
planmate affirm --refresh
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
			s := affirm.Affirm{
				Refresh:     refresh,
				Persistence: p,
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Replace the day's affirmation with a random pick.")
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
