package options

import (
	"github.com/spf13/cobra"
)

// ClockOptions
type ClockOptions struct {
	At    string
	Until string
}

func AddClockArgs(cmd *cobra.Command, o *ClockOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Start time in 24h form, example: --at="14:00".`)
	cmd.Flags().StringVar(&o.Until, "until", "",
		`Optional end time, example: --until="15:30".`)
}
