package options

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"actlog/pkg/export"
)

// ExportOptions captures the sink selection for the export command.
type ExportOptions struct {
	Dir       string
	Clipboard bool
	Stdout    bool
	Yes       bool
}

// AddExportArgs wires sink selection flags on the provided command.
func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Dir, "dir", "d", "",
		"Write the export file into this directory (default: current directory).")
	cmd.Flags().BoolVar(&o.Clipboard, "clipboard", false,
		"Copy the export to the system clipboard instead of a file.")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false,
		"Stream the export to stdout instead of a file.")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// GetSink resolves the selected sink. At most one destination may be chosen.
func (o *ExportOptions) GetSink(stdout io.Writer) (export.Sink, error) {
	chosen := 0
	if o.Clipboard {
		chosen++
	}
	if o.Stdout {
		chosen++
	}
	if o.Dir != "" {
		chosen++
	}
	if chosen > 1 {
		return nil, errors.New("pick one of --dir, --clipboard, --stdout")
	}
	switch {
	case o.Clipboard:
		return export.ClipboardSink{}, nil
	case o.Stdout:
		return export.WriterSink{W: stdout}, nil
	default:
		return export.FileSink{Dir: o.Dir}, nil
	}
}
