// Package export provides the runner that exports and clears the log.
package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"actlog/pkg/app"
	expkg "actlog/pkg/export"
)

// Export serializes the whole log through the configured sink and clears the
// store on success. Unless SkipConfirm is set, it asks for a yes/no before
// doing anything, since a successful export empties the local log.
type Export struct {
	Service     *app.Service
	Sink        expkg.Sink
	SkipConfirm bool

	In  io.Reader
	Out io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.Sink == nil {
		return errors.New("can not export, no sink")
	}

	records, err := n.Service.GetSnapshot()
	if err != nil {
		return err
	}

	if !n.SkipConfirm {
		ok, err := n.confirm(len(records))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(n.Out, "export cancelled, log unchanged")
			return nil
		}
	}

	if err := n.Service.Export(n.Sink); err != nil {
		return err
	}
	switch len(records) {
	case 1:
		fmt.Fprintln(n.Out, "exported 1 entry, log cleared")
	default:
		fmt.Fprintf(n.Out, "exported %d entries, log cleared\n", len(records))
	}
	return nil
}

func (n *Export) confirm(count int) (bool, error) {
	fmt.Fprintf(n.Out, "export %d entries and clear the log? [y/N] ", count)
	line, err := bufio.NewReader(n.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
