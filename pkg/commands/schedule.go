package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planmate/pkg/commands/options"
	"tableflip.dev/planmate/pkg/runner/schedule"
	"tableflip.dev/planmate/pkg/store"
)

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	co := &options.ClockOptions{}

	cmd := &cobra.Command{
		Use:   "schedule [task id]",
		Short: "assign a time to a task, or show the day's hour grid",
		Example: `
planmate schedule
planmate schedule <task id> --at="14:00"
planmate schedule <task id> --at="14:00" --until="15:30"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				io.ID = strings.Join(args, " ")
				if co.At == "" {
					return errors.New("scheduling a task requires --at")
				}
			}
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
			s := schedule.Schedule{
				ID:          io.ID,
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

	options.AddOnArgs(cmd, oo)
	options.AddClockArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addUnschedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "unschedule",
		Short: "clear a task's start and end times",
		Example: `
planmate unschedule <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := schedule.Unschedule{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
