package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/diary"
	"tableflip.dev/planmate/pkg/store"
)

func addDiary(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "diary [text]",
		Aliases: []string{"journal"},
		Short:   "show or write a day's diary entry",
		Long: `Show the diary entry for a day, or overwrite it by passing text.
Each day holds one entry; writing replaces what was there.`,
		Example: `
planmate diary
planmate diary a good day, mostly
planmate diary --on="2026-3-1"
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
			s := diary.Diary{
				Persistence: p,
			}
			if on != nil {
				s.On = *on
			}
			if len(args) > 0 {
				s.Set = true
				s.Text = strings.Join(args, " ")
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
