package commands

import (
	"context"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "show or set the theme preference",
		Example: `
actlog theme
actlog theme dark
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}

			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			s := theme.Theme{
				Service: svc,
				Value:   value,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
