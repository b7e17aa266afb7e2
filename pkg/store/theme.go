package store

import (
	"fmt"
	"strings"
)

// Theme is the persisted presentation preference. It never interacts with
// the log data.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(v string) (Theme, error) {
	switch Theme(strings.TrimSpace(strings.ToLower(v))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("store: unknown theme %q (want light or dark)", v)
}

// Theme returns the stored preference, defaulting to light when nothing
// usable was persisted.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.d.Has(themeKey) {
		return ThemeLight
	}
	data, err := s.d.Read(themeKey)
	if err != nil {
		return ThemeLight
	}
	t, err := ParseTheme(string(data))
	if err != nil {
		return ThemeLight
	}
	return t
}

// SetTheme persists the preference.
func (s *Store) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Write(themeKey, []byte(t))
}
