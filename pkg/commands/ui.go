package commands

import (
	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "interactive activity logger",
		Example: `
actlog ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	options.AddPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
