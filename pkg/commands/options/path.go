// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"actlog/pkg/store"
)

// PathOptions captures the store location override shared by all commands.
type PathOptions struct {
	Path string
}

// AddPathArgs wires the store path flag on the provided command.
func AddPathArgs(cmd *cobra.Command, o *PathOptions) {
	cmd.Flags().StringVar(&o.Path, "path", "",
		"Override the store location (default: .actlog config or ~/.actlog.db).")
}

// GetConfig resolves the store config, honoring the override.
func (o *PathOptions) GetConfig() (store.Config, error) {
	if o.Path != "" {
		return store.PathConfig(o.Path), nil
	}
	return store.LoadConfig()
}
