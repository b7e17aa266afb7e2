// Package add provides the runner that records a new activity.
package add

import (
	"context"
	"errors"

	"actlog/pkg/app"
	"actlog/pkg/printers"
)

// Add records one activity and reprints the log.
type Add struct {
	Service  *app.Service
	Activity string
}

func (n *Add) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if err := n.Service.RecordActivity(n.Activity); err != nil {
		return err
	}

	records, err := n.Service.GetSnapshot()
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Activity Log", len(records))
	pp.Log(records...)
	return nil
}
