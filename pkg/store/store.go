package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"actlog/pkg/record"
)

const (
	logKey   = "log"
	themeKey = "theme"
)

// ErrNoRecords is returned when an operation needs at least one recorded
// activity and the log is empty.
var ErrNoRecords = errors.New("store: no recorded activities yet")

// IndexError reports an edit position outside the current log.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("store: index %d out of bounds for log of %d", e.Index, e.Length)
}

// CorruptError reports an unreadable persisted log. Open still returns a
// usable empty store alongside it so callers can recover.
type CorruptError struct {
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store: persisted log unreadable: %v", e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store owns the canonical record sequence. All mutation funnels through it
// and every mutation persists the whole collection before returning, so the
// in-memory and on-disk state never diverge. Mutations are serialized by an
// internal lock.
type Store struct {
	mu      sync.Mutex
	d       *diskv.Diskv
	records []record.Record

	now func() time.Time
}

// Open hydrates a store from cfg's base path. A missing log yields an empty
// store. An unparsable log also yields a usable empty store, together with a
// *CorruptError the caller is expected to report and move past.
func Open(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	s := &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		records: []record.Record{},
		now:     time.Now,
	}

	if !s.d.Has(logKey) {
		return s, nil
	}
	data, err := s.d.Read(logKey)
	if err != nil {
		return s, &CorruptError{Err: err}
	}
	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return s, &CorruptError{Err: err}
	}
	if records == nil {
		records = []record.Record{}
	}
	s.records = records
	return s, nil
}

// BasePath reports where the store lives on disk.
func (s *Store) BasePath() string {
	return s.d.BasePath
}

// RecordActivity appends a record for label stamped with the current instant
// and persists the updated collection.
func (s *Store) RecordActivity(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := record.New(label, s.now())
	if err != nil {
		return err
	}
	s.records = append(s.records, r)
	if err := s.persistLocked(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// AddCommentToLatest appends text to the most recently created record.
func (s *Store) AddCommentToLatest(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return ErrNoRecords
	}
	last := len(s.records) - 1
	prev := s.records[last]
	s.records[last] = prev.WithComment(text)
	if err := s.persistLocked(); err != nil {
		s.records[last] = prev
		return err
	}
	return nil
}

// EditAt replaces the activity and comments of the record at the given
// creation-order index. Callers holding a newest-first display position must
// translate it first with StoredIndex.
func (s *Store) EditAt(storedIndex int, newActivity, commentsRaw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if storedIndex < 0 || storedIndex >= len(s.records) {
		return &IndexError{Index: storedIndex, Length: len(s.records)}
	}
	prev := s.records[storedIndex]
	edited, err := prev.Edited(newActivity, commentsRaw)
	if err != nil {
		return err
	}
	s.records[storedIndex] = edited
	if err := s.persistLocked(); err != nil {
		s.records[storedIndex] = prev
		return err
	}
	return nil
}

// Clear empties the log and persists the empty collection. Only the export
// path calls this, after a confirmed delivery.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = []record.Record{}
	if err := s.persistLocked(); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// Snapshot returns a value copy of the log in creation order. Mutating the
// returned slice never affects the store.
func (s *Store) Snapshot() []record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]record.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// StoredIndex translates a newest-first display position into the
// creation-order index EditAt expects.
func StoredIndex(length, displayedIndex int) int {
	return length - 1 - displayedIndex
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	if err := s.d.Write(logKey, data); err != nil {
		return fmt.Errorf("store: persist log: %w", err)
	}
	return nil
}
