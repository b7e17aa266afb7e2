// Package export serializes the full activity log, hands it to a delivery
// sink, and clears the store once the handoff succeeds.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"actlog/pkg/record"
)

// Sink receives the exported payload. Concrete sinks (file write, clipboard,
// stream) are interchangeable; the coordinator never cares which is in use.
type Sink interface {
	Deliver(payload []byte, filename string) error
}

// Log is the slice of the store the coordinator needs.
type Log interface {
	Snapshot() []record.Record
	Clear() error
}

// ExportError reports a failed delivery. The store is left untouched.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: deliver: %v", e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Coordinator exports the whole log through a sink. The clear-on-success
// policy is immediate: a successful Deliver is taken as confirmed delivery
// and the store is cleared right away. Any interactive confirmation belongs
// to the presentation layer, before ExportAll is called.
type Coordinator struct {
	Store Log
	Sink  Sink

	// Now stamps the suggested filename; defaults to time.Now.
	Now func() time.Time
}

// ExportAll serializes the current snapshot, delivers it, and clears the
// store. A failed delivery returns *ExportError and changes nothing.
func (c *Coordinator) ExportAll() error {
	if c.Store == nil {
		return errors.New("export: no store configured")
	}
	if c.Sink == nil {
		return errors.New("export: no sink configured")
	}

	payload, err := Marshal(c.Store.Snapshot())
	if err != nil {
		return err
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	if err := c.Sink.Deliver(payload, FileName(now)); err != nil {
		return &ExportError{Err: err}
	}
	return c.Store.Clear()
}

// Marshal renders records in the interchange format: an indented JSON array
// with activity, timestamp, comments per record. An empty log renders as [].
func Marshal(records []record.Record) ([]byte, error) {
	if records == nil {
		records = []record.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// FileName suggests a name embedding the export instant, with the colons
// unsafe in filenames replaced.
func FileName(now time.Time) string {
	ts := record.Timestamp{Time: now}.String()
	return "activity-log-" + strings.ReplaceAll(ts, ":", "-") + ".json"
}
