// Package activity loads and saves the user-editable set of activity labels.
// The document is independent of the log itself and is always replaced
// wholesale, never patched.
package activity

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InvalidConfigError reports an unusable activities document. Callers keep
// whatever configuration was active before.
type InvalidConfigError struct {
	Err error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("activity: invalid configuration: %v", e.Err)
}

func (e *InvalidConfigError) Unwrap() error { return e.Err }

// Config is the ordered set of activity labels offered to the user. Order is
// display order; duplicates are kept as written.
type Config struct {
	Activities []string `yaml:"activities"`
}

// Default is the built-in label set used when nothing was saved yet.
func Default() Config {
	return Config{Activities: []string{"Work", "Break", "Exercise"}}
}

// Parse reads the editable YAML document. A document that does not parse, or
// parses without a usable activities list, yields *InvalidConfigError.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, &InvalidConfigError{Err: err}
	}
	if len(c.Activities) == 0 {
		return Config{}, &InvalidConfigError{Err: errors.New("missing activities list")}
	}
	return c, nil
}

// Marshal renders the editable document. Parse(Marshal(c)) round-trips.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadFile reads the document at path. An absent file yields Default.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Parse(data)
}

// SaveFile replaces the document at path via scratch file and rename.
func (c Config) SaveFile(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
