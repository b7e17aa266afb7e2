package commands

import (
	"github.com/spf13/cobra"

	"actlog/pkg/app"
	"actlog/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "actlog",
		Short: "Offline activity logging on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addComment(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addExport(topLevel)
	addActivities(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

func newService(po *options.PathOptions) (*app.Service, error) {
	cfg, err := po.GetConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}
