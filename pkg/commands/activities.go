package commands

import (
	"context"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/activities"
)

func addActivities(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	showPath := false

	cmd := &cobra.Command{
		Use:   "activities [label ...]",
		Short: "show or replace the activity labels",
		Long: `With no arguments, print the configured activity labels. With
arguments, replace the whole set. The set is a plain YAML document; use
--edit-path to find it and edit it by hand.`,
		Example: `
actlog activities
actlog activities Work Break Exercise Reading
actlog activities --edit-path
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := activities.Activities{
				Service:  svc,
				Set:      args,
				ShowPath: showPath,
				Out:      cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)
	cmd.Flags().BoolVar(&showPath, "edit-path", false,
		"Print the path of the editable activities document.")

	topLevel.AddCommand(cmd)
}
