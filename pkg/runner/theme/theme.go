// Package theme provides the runner that shows or sets the theme preference.
package theme

import (
	"context"
	"errors"
	"fmt"
	"io"

	"actlog/pkg/app"
	"actlog/pkg/store"
)

// Theme prints the current preference, or persists Value when set.
type Theme struct {
	Service *app.Service
	Value   string

	Out io.Writer
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set theme, no service")
	}

	if n.Value != "" {
		t, err := store.ParseTheme(n.Value)
		if err != nil {
			return err
		}
		if err := n.Service.SetTheme(t); err != nil {
			return err
		}
	}

	fmt.Fprintln(n.Out, n.Service.Theme())
	return nil
}
