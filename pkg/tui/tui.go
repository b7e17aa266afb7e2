// Package tui is the interactive front end: a row of activity buttons over a
// newest-first view of the log. It is a thin layer; every mutation goes
// through the app service and the store remains the source of truth.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"actlog/pkg/activity"
	"actlog/pkg/app"
	"actlog/pkg/export"
	"actlog/pkg/record"
	"actlog/pkg/store"
)

const maxVisibleEntries = 12

type changeMsg struct{}

// Model is the bubbletea model for the activity logger.
type Model struct {
	svc    *app.Service
	cfg    activity.Config
	styles Styles
	theme  store.Theme

	records []record.Record // creation order; View reverses at render time
	cursor  int

	commenting bool
	input      textinput.Model

	status string
	events <-chan store.Event
}

// New builds the model, loading the activity configuration, the current log,
// and the stored theme preference.
func New(svc *app.Service) (Model, error) {
	cfg, err := svc.LoadConfig()
	if err != nil {
		return Model{}, err
	}
	records, err := svc.GetSnapshot()
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "Add a comment to the latest entry…"
	input.Prompt = "> "

	theme := svc.Theme()
	return Model{
		svc:     svc,
		cfg:     cfg,
		styles:  NewStyles(theme),
		theme:   theme,
		records: records,
		input:   input,
	}, nil
}

// WatchStore wires live refresh: store changes re-render the log view.
func (m *Model) WatchStore(ctx context.Context) error {
	events, err := m.svc.Store.Watch(ctx)
	if err != nil {
		return err
	}
	m.events = events
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return changeMsg{}
		}
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changeMsg:
		m.refresh()
		return m, m.waitForChange()
	case tea.KeyMsg:
		if m.commenting {
			return m.updateComment(msg)
		}
		return m.updatePick(msg)
	}
	if m.commenting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cfg.Activities)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.cfg.Activities) == 0 {
			m.status = "no activities configured"
			break
		}
		label := m.cfg.Activities[m.cursor]
		if err := m.svc.RecordActivity(label); err != nil {
			m.status = err.Error()
			break
		}
		m.refresh()
		m.status = fmt.Sprintf("logged %q", label)
	case "c":
		if len(m.records) == 0 {
			m.status = "log an activity first"
			break
		}
		m.commenting = true
		m.input.SetValue("")
		m.input.Focus()
		m.status = ""
		return m, textinput.Blink
	case "x":
		if err := m.svc.Export(export.FileSink{}); err != nil {
			m.status = err.Error()
			break
		}
		count := len(m.records)
		m.refresh()
		m.status = fmt.Sprintf("exported %d entries, log cleared", count)
	case "t":
		next := store.ThemeDark
		if m.theme == store.ThemeDark {
			next = store.ThemeLight
		}
		if err := m.svc.SetTheme(next); err != nil {
			m.status = err.Error()
			break
		}
		m.theme = next
		m.styles = NewStyles(next)
		m.status = fmt.Sprintf("theme: %s", next)
	}
	return m, nil
}

func (m Model) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commenting = false
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.commenting = false
		m.input.Blur()
		if err := m.svc.AddComment(text); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "comment added"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if records, err := m.svc.GetSnapshot(); err == nil {
		m.records = records
	}
	if m.cursor >= len(m.cfg.Activities) && len(m.cfg.Activities) > 0 {
		m.cursor = len(m.cfg.Activities) - 1
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Activity Log"))
	b.WriteString("\n\n")

	for i, label := range m.cfg.Activities {
		if i == m.cursor {
			b.WriteString(m.styles.ButtonActive.Render(label))
		} else {
			b.WriteString(m.styles.Button.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if m.commenting {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if len(m.records) == 0 {
		b.WriteString(m.styles.Comment.Render("nothing logged yet"))
		b.WriteString("\n")
	}
	shown := 0
	for displayed := 0; displayed < len(m.records) && shown < maxVisibleEntries; displayed++ {
		r := m.records[len(m.records)-1-displayed]
		line := fmt.Sprintf("%s  %s", r.Timestamp.Local().Format("15:04"), r.Activity)
		b.WriteString(m.styles.Entry.Render(line))
		b.WriteString("\n")
		for _, c := range r.Comments {
			b.WriteString(m.styles.Comment.Render("       · " + c))
			b.WriteString("\n")
		}
		shown++
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter log · c comment · x export · t theme · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive UI over the given service.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := New(svc)
	if err != nil {
		return err
	}
	if err := m.WatchStore(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
