package record

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidActivity is returned when an activity label is empty after
// trimming whitespace.
var ErrInvalidActivity = errors.New("record: activity label is empty")

// Record is a single logged activity event.
type Record struct {
	Activity  string    `json:"activity"`
	Timestamp Timestamp `json:"timestamp"`
	Comments  []string  `json:"comments"`
}

// New constructs a record for activity at the given instant with no comments.
func New(activity string, now time.Time) (Record, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return Record{}, ErrInvalidActivity
	}
	return Record{
		Activity:  activity,
		Timestamp: Timestamp{Time: now},
		Comments:  []string{},
	}, nil
}

// WithComment returns a copy of r with text appended to its comments. An
// empty text is kept as-is.
func (r Record) WithComment(text string) Record {
	out := r.Clone()
	out.Comments = append(out.Comments, text)
	return out
}

// Edited returns a copy of r with the activity replaced by the trimmed
// newActivity and the comments replaced wholesale by splitting commentsRaw.
// The timestamp is untouched.
func (r Record) Edited(newActivity, commentsRaw string) (Record, error) {
	newActivity = strings.TrimSpace(newActivity)
	if newActivity == "" {
		return Record{}, ErrInvalidActivity
	}
	out := r.Clone()
	out.Activity = newActivity
	out.Comments = SplitComments(commentsRaw)
	return out, nil
}

// SplitComments splits raw on commas, trims each piece, and drops empties.
func SplitComments(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a copy of r whose comment slice shares no storage with r.
// The copy always carries a non-nil comment slice so it serializes as [].
func (r Record) Clone() Record {
	out := r
	out.Comments = make([]string, len(r.Comments))
	copy(out.Comments, r.Comments)
	return out
}
