package commands

import (
	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	gro := &options.GetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "print the activity log, newest first",
		Example: `
actlog get
actlog get --timestamps
actlog get --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := get.Get{
				Service:    svc,
				Timestamps: gro.Timestamps,
				Follow:     gro.Follow,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddPathArgs(cmd, po)
	options.AddGetArgs(cmd, gro)

	topLevel.AddCommand(cmd)
}
