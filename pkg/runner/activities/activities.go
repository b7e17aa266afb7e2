// Package activities provides the runner that shows or replaces the
// configured activity labels.
package activities

import (
	"context"
	"errors"
	"fmt"
	"io"

	"actlog/pkg/activity"
	"actlog/pkg/app"
	"actlog/pkg/printers"
)

// Activities shows the configured label set, or replaces it wholesale when
// Set is non-empty. ShowPath prints where the editable document lives so the
// user can open it in an editor.
type Activities struct {
	Service  *app.Service
	Set      []string
	ShowPath bool

	Out io.Writer
}

func (n *Activities) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Service == nil {
		return errors.New("can not configure, no service")
	}

	if n.ShowPath {
		fmt.Fprintln(n.Out, n.Service.ConfigPath)
		return nil
	}

	if len(n.Set) > 0 {
		if err := n.Service.SaveActivities(activity.Config{Activities: n.Set}); err != nil {
			return err
		}
	}

	cfg, err := n.Service.LoadConfig()
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.Title("Activities")
	for _, label := range cfg.Activities {
		fmt.Fprintf(n.Out, "  %s\n", label)
	}
	fmt.Fprintln(n.Out, "")
	return nil
}
