package options

import (
	"github.com/spf13/cobra"
)

// GetOptions captures display flags for the get command.
type GetOptions struct {
	Timestamps bool
	Follow     bool
}

// AddGetArgs wires display flags on the provided command.
func AddGetArgs(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().BoolVarP(&o.Timestamps, "timestamps", "t", false,
		"Show entry timestamps.")
	cmd.Flags().BoolVarP(&o.Follow, "watch", "w", false,
		"Keep printing as the log changes.")
}
