package activity

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	got := Default()
	want := []string{"Work", "Break", "Exercise"}
	if !reflect.DeepEqual(got.Activities, want) {
		t.Fatalf("expected %v, got %v", want, got.Activities)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("activities:\n  - Work\n  - Gym\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"Work", "Gym"}
	if !reflect.DeepEqual(cfg.Activities, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Activities)
	}
}

func TestParsePreservesOrderAndDuplicates(t *testing.T) {
	cfg, err := Parse([]byte("activities: [Break, Work, Break]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"Break", "Work", "Break"}
	if !reflect.DeepEqual(cfg.Activities, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Activities)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"garbage":        ":\n\t-",
		"wrong shape":    "activities: 12\n",
		"missing list":   "something: else\n",
		"empty list":     "activities: []\n",
		"empty document": "",
	}
	for name, text := range cases {
		var invalid *InvalidConfigError
		if _, err := Parse([]byte(text)); !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidConfigError, got %v", name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := Config{Activities: []string{"Work", "Deep Work", "Break"}}
	data, err := orig.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(back, orig) {
		t.Fatalf("round trip changed config: %#v != %#v", back, orig)
	}
}

func TestLoadFileMissingYieldsDefault(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "activities.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected default config, got %#v", cfg)
	}
}

func TestSaveFileLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	orig := Config{Activities: []string{"Reading", "Writing"}}
	if err := orig.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(back, orig) {
		t.Fatalf("round trip changed config: %#v != %#v", back, orig)
	}
}
