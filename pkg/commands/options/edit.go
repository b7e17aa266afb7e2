package options

import (
	"github.com/spf13/cobra"
)

// EditOptions captures the replacement values for the edit command.
type EditOptions struct {
	Activity string
	Comments string
}

// AddEditArgs wires edit flags on the provided command.
func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Activity, "activity", "a", "",
		"Replacement activity label.")
	cmd.Flags().StringVarP(&o.Comments, "comments", "c", "",
		`Replacement comments, comma separated: --comments="warmup, cardio".`)
}
