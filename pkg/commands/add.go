package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "add <activity>",
		Short: "log an activity now",
		Example: `
actlog add Work
actlog add "Deep Work"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := add.Add{
				Service:  svc,
				Activity: strings.Join(args, " "),
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
