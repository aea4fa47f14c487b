package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/add"
	"tableflip.dev/planmate/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.AddOptions{}
	oo := &options.OnOptions{}
	co := &options.ClockOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
planmate add water the plants
planmate add standup --at="9:30" --until="9:45"
planmate add buy cake --on="3/14"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			no.Title = strings.Join(args, " ")

			return nil
		},
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

			s := add.Add{
				Title:       no.Title,
				Description: no.Description,
				StartTime:   co.At,
				EndTime:     co.Until,
				Persistence: p,
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDescriptionArgs(cmd, no)
	options.AddOnArgs(cmd, oo)
	options.AddClockArgs(cmd, co)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
