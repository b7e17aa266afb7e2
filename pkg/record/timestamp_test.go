package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampString(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 4, 9, 15, 0, 0, 0, time.UTC)}
	if got := ts.String(); got != "2025-04-09T15:00:00.000Z" {
		t.Fatalf("expected millisecond UTC form, got %q", got)
	}

	// Always rendered in UTC, whatever zone the instant carries.
	est := time.FixedZone("EST", -5*60*60)
	ts = Timestamp{Time: time.Date(2025, 4, 9, 10, 30, 0, 250e6, est)}
	if got := ts.String(); got != "2025-04-09T15:30:00.250Z" {
		t.Fatalf("expected UTC normalization, got %q", got)
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	r, err := New("Work", time.Date(2025, 4, 9, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"activity":"Work","timestamp":"2025-04-09T15:00:00.000Z","comments":[]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Timestamp.Equal(r.Timestamp.Time) {
		t.Fatalf("round trip changed instant: %v != %v", back.Timestamp, r.Timestamp)
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"not a time"`), &ts); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestTimestampZero(t *testing.T) {
	var ts Timestamp
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf(`expected "" for zero timestamp, got %s`, data)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero timestamp, got %v", back)
	}
}
