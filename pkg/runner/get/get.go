// Package get provides the runner that prints the activity log.
package get

import (
	"context"
	"errors"

	"actlog/pkg/app"
	"actlog/pkg/printers"
)

// Get prints the log newest-first. With Follow set it keeps reprinting as
// the underlying store changes until the context is cancelled.
type Get struct {
	Service    *app.Service
	Timestamps bool
	Follow     bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	if err := n.print(); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}

	events, err := n.Service.Store.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.print(); err != nil {
				return err
			}
		}
	}
}

func (n *Get) print() error {
	pp := printers.PrettyPrint{ShowTimestamps: n.Timestamps}

	records, err := n.Service.GetSnapshot()
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Activity Log", len(records))
	pp.Log(records...)
	return nil
}
