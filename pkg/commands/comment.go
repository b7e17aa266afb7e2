package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/comment"
)

func addComment(topLevel *cobra.Command) {
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "comment <text>",
		Short: "comment on the latest activity",
		Example: `
actlog comment "finished the report"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := comment.Comment{
				Service: svc,
				Text:    strings.Join(args, " "),
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
