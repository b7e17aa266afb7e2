// Package edit provides the runner that rewrites a logged entry.
package edit

import (
	"context"
	"errors"

	"actlog/pkg/app"
	"actlog/pkg/printers"
)

// Edit replaces the activity and comments of the entry at a display
// position, counted newest-first exactly as `actlog get` numbers them.
type Edit struct {
	Service        *app.Service
	DisplayedIndex int
	Activity       string
	Comments       string
}

func (n *Edit) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	if err := n.Service.EditEntry(n.DisplayedIndex, n.Activity, n.Comments); err != nil {
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
