package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"actlog/pkg/app"
	"actlog/pkg/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc, err := app.New(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	m, err := New(svc)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEnterLogsSelectedActivity(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	snap, _ := m.svc.GetSnapshot()
	if len(snap) != 1 || snap[0].Activity != "Work" {
		t.Fatalf("enter must log the selected default activity: %#v", snap)
	}

	// Move to the second button and log again.
	next, _ = m.Update(keyRune('j'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	snap, _ = m.svc.GetSnapshot()
	if len(snap) != 2 || snap[1].Activity != "Break" {
		t.Fatalf("expected Break as second record: %#v", snap)
	}
}

func TestCommentFlow(t *testing.T) {
	m := newTestModel(t)

	// Commenting with an empty log is refused up front.
	next, _ := m.Update(keyRune('c'))
	m = next.(Model)
	if m.commenting {
		t.Fatalf("comment mode must require a logged activity")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(keyRune('c'))
	m = next.(Model)
	if !m.commenting {
		t.Fatalf("expected comment mode")
	}

	for _, r := range "hi" {
		next, _ = m.Update(keyRune(r))
		m = next.(Model)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	snap, _ := m.svc.GetSnapshot()
	if len(snap[0].Comments) != 1 || snap[0].Comments[0] != "hi" {
		t.Fatalf("expected comment on latest record: %#v", snap)
	}
}

func TestCommentEscCancels(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(keyRune('c'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.commenting {
		t.Fatalf("esc must leave comment mode")
	}
	snap, _ := m.svc.GetSnapshot()
	if len(snap[0].Comments) != 0 {
		t.Fatalf("cancelled comment must not be recorded: %#v", snap)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	if m.theme != store.ThemeLight {
		t.Fatalf("expected light start, got %q", m.theme)
	}
	next, _ := m.Update(keyRune('t'))
	m = next.(Model)
	if m.theme != store.ThemeDark {
		t.Fatalf("expected dark after toggle, got %q", m.theme)
	}
	if got := m.svc.Theme(); got != store.ThemeDark {
		t.Fatalf("toggle must persist the preference, got %q", got)
	}
}

func TestViewShowsLogNewestFirst(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(keyRune('j'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	// Both labels also appear in the button row, so compare the last
	// occurrences: those are the log lines. Break was logged last and must
	// render above Work.
	view := m.View()
	lastWork := strings.LastIndex(view, "Work")
	lastBreak := strings.LastIndex(view, "Break")
	if lastWork < 0 || lastBreak < 0 {
		t.Fatalf("view missing entries:\n%s", view)
	}
	if lastBreak > lastWork {
		t.Fatalf("expected newest entry first:\n%s", view)
	}
}
