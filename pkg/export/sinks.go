package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// FileSink writes the payload under Dir using the suggested filename. The
// write goes through a scratch file and rename so a crash never leaves a
// half-written export behind.
type FileSink struct {
	Dir string
}

func (s FileSink) Deliver(payload []byte, filename string) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure export directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ClipboardSink places the payload on the system clipboard.
type ClipboardSink struct{}

func (ClipboardSink) Deliver(payload []byte, _ string) error {
	return clipboard.WriteAll(string(payload))
}

// WriterSink streams the payload to W, e.g. stdout.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(payload []byte, _ string) error {
	if _, err := s.W.Write(payload); err != nil {
		return err
	}
	_, err := io.WriteString(s.W, "\n")
	return err
}
