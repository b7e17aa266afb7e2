// Package app provides the high-level command surface over the log store so
// CLIs and TUIs share one set of operations.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"actlog/pkg/activity"
	"actlog/pkg/export"
	"actlog/pkg/record"
	"actlog/pkg/store"
)

const activitiesFile = "activities.yaml"

// Service wires the store, the activity configuration, and the export
// coordinator behind one object the presentation layers are handed.
type Service struct {
	Store      *store.Store
	ConfigPath string
}

// New opens the store described by cfg and builds a service around it. A
// corrupt persisted log is reported to stderr and recovered as empty rather
// than failing startup.
func New(cfg store.Config) (*Service, error) {
	s, err := store.Open(cfg)
	if err != nil {
		var corrupt *store.CorruptError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "actlog: %v (starting with an empty log)\n", corrupt)
	}
	return &Service{
		Store:      s,
		ConfigPath: filepath.Join(s.BasePath(), activitiesFile),
	}, nil
}

var errNoStore = errors.New("app: no store configured")

// GetSnapshot returns the log in creation order.
func (s *Service) GetSnapshot() ([]record.Record, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Snapshot(), nil
}

// Display returns the log in newest-first order for rendering. The reversal
// is a read-time transform; storage order is untouched.
func (s *Service) Display() ([]record.Record, error) {
	records, err := s.GetSnapshot()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// RecordActivity appends a record for label stamped now.
func (s *Service) RecordActivity(label string) error {
	if s.Store == nil {
		return errNoStore
	}
	return s.Store.RecordActivity(label)
}

// AddComment attaches text to the most recently created record.
func (s *Service) AddComment(text string) error {
	if s.Store == nil {
		return errNoStore
	}
	return s.Store.AddCommentToLatest(text)
}

// EditEntry edits the record at a newest-first display position, translating
// it to the stored creation-order index.
func (s *Service) EditEntry(displayedIndex int, newActivity, commentsRaw string) error {
	if s.Store == nil {
		return errNoStore
	}
	length := len(s.Store.Snapshot())
	return s.Store.EditAt(store.StoredIndex(length, displayedIndex), newActivity, commentsRaw)
}

// Export serializes the whole log through sink and clears the store on a
// successful handoff.
func (s *Service) Export(sink export.Sink) error {
	if s.Store == nil {
		return errNoStore
	}
	c := export.Coordinator{Store: s.Store, Sink: sink}
	return c.ExportAll()
}

// LoadConfig reads the activity label set, falling back to the built-in
// default when none was saved yet. On a parse failure the caller keeps its
// previously active configuration.
func (s *Service) LoadConfig() (activity.Config, error) {
	return activity.LoadFile(s.ConfigPath)
}

// SaveConfig validates text as an activities document and replaces the saved
// one wholesale. An invalid document changes nothing.
func (s *Service) SaveConfig(text string) error {
	cfg, err := activity.Parse([]byte(text))
	if err != nil {
		return err
	}
	return cfg.SaveFile(s.ConfigPath)
}

// SaveActivities replaces the saved label set directly.
func (s *Service) SaveActivities(cfg activity.Config) error {
	if len(cfg.Activities) == 0 {
		return &activity.InvalidConfigError{Err: errors.New("missing activities list")}
	}
	return cfg.SaveFile(s.ConfigPath)
}

// Theme returns the stored presentation preference.
func (s *Service) Theme() store.Theme {
	if s.Store == nil {
		return store.ThemeLight
	}
	return s.Store.Theme()
}

// SetTheme persists the presentation preference.
func (s *Service) SetTheme(t store.Theme) error {
	if s.Store == nil {
		return errNoStore
	}
	return s.Store.SetTheme(t)
}
