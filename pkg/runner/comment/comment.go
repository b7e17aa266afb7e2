// Package comment provides the runner that annotates the latest activity.
package comment

import (
	"context"
	"errors"

	"actlog/pkg/app"
	"actlog/pkg/printers"
	"actlog/pkg/store"
)

// Comment appends free text to the most recently logged activity.
type Comment struct {
	Service *app.Service
	Text    string
}

func (n *Comment) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Service == nil {
		return errors.New("can not comment, no service")
	}

	if err := n.Service.AddComment(n.Text); err != nil {
		if errors.Is(err, store.ErrNoRecords) {
			return errors.New("log an activity first")
		}
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
