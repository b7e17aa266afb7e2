package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeDefaultsToLight(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.Theme(); got != ThemeLight {
		t.Fatalf("expected light default, got %q", got)
	}
}

func TestSetThemePersists(t *testing.T) {
	s, dir := newTestStore(t)
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if got := s.Theme(); got != ThemeDark {
		t.Fatalf("expected dark, got %q", got)
	}

	again, err := Open(PathConfig(dir))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := again.Theme(); got != ThemeDark {
		t.Fatalf("theme must survive a reopen, got %q", got)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetTheme(Theme("solarized")); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestThemeUnusableStoredValue(t *testing.T) {
	s, dir := newTestStore(t)
	if err := os.WriteFile(filepath.Join(dir, "theme"), []byte("purple"), 0o644); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	if got := s.Theme(); got != ThemeLight {
		t.Fatalf("unusable stored theme must fall back to light, got %q", got)
	}
}

func TestParseTheme(t *testing.T) {
	if got, err := ParseTheme(" Dark \n"); err != nil || got != ThemeDark {
		t.Fatalf("expected dark, got %q (%v)", got, err)
	}
	if _, err := ParseTheme(""); err == nil {
		t.Fatalf("expected error for empty theme")
	}
}
