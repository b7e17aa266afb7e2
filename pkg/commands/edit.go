package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"actlog/pkg/commands/options"
	"actlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "rewrite a logged entry by its displayed position",
		Long: `Rewrite the activity and comments of one entry. The index is the
position printed by "actlog get", counted newest first from 0.`,
		Example: `
actlog edit 0 --activity Gym --comments="warmup, cardio, stretch"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}

			svc, err := newService(po)
			if err != nil {
				return err
			}

			s := edit.Edit{
				Service:        svc,
				DisplayedIndex: index,
				Activity:       eo.Activity,
				Comments:       eo.Comments,
			}
			return s.Do(context.Background())
		},
	}

	options.AddPathArgs(cmd, po)
	options.AddEditArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
