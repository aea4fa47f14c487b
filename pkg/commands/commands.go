package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planmate",
		Short: base.Wrap80("Daily planning, diary, and affirmations on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addToday(topLevel)
	addAdd(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addSchedule(topLevel)
	addUnschedule(topLevel)
	addDiary(topLevel)
	addAffirm(topLevel)
	addCalendar(topLevel)
	addTracker(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
