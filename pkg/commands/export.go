package commands

import (
	"context"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the whole log and clear it",
		Long: `Serialize every logged entry to a self-contained JSON file and, once
delivery succeeds, clear the local log. A failed delivery leaves the log
untouched.`,
		Example: `
actlog export
actlog export --dir ~/exports --yes
actlog export --clipboard
actlog export --stdout --yes > backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := eo.GetSink(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := export.Export{
				Service:     svc,
				Sink:        sink,
				SkipConfirm: eo.Yes,
				In:          cmd.InOrStdin(),
				Out:         cmd.ErrOrStderr(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)
	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
