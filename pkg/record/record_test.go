package record

import (
	"errors"
	"testing"
	"time"
)

func TestNewTrimsActivity(t *testing.T) {
	r, err := New("  Work  ", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Activity != "Work" {
		t.Fatalf("expected trimmed activity, got %q", r.Activity)
	}
	if r.Comments == nil || len(r.Comments) != 0 {
		t.Fatalf("expected empty non-nil comments, got %#v", r.Comments)
	}
}

func TestNewEmptyActivity(t *testing.T) {
	for _, label := range []string{"", "   ", "\t\n"} {
		if _, err := New(label, time.Now()); !errors.Is(err, ErrInvalidActivity) {
			t.Fatalf("label %q: expected ErrInvalidActivity, got %v", label, err)
		}
	}
}

func TestWithCommentAppends(t *testing.T) {
	r, _ := New("Work", time.Now())
	r2 := r.WithComment("first")
	r3 := r2.WithComment("second")

	if len(r.Comments) != 0 {
		t.Fatalf("original record mutated: %#v", r.Comments)
	}
	if len(r3.Comments) != 2 || r3.Comments[0] != "first" || r3.Comments[1] != "second" {
		t.Fatalf("expected [first second], got %#v", r3.Comments)
	}
}

func TestWithCommentAllowsEmpty(t *testing.T) {
	r, _ := New("Work", time.Now())
	r = r.WithComment("")
	if len(r.Comments) != 1 || r.Comments[0] != "" {
		t.Fatalf("expected one empty comment, got %#v", r.Comments)
	}
}

func TestEditedReplacesWholesale(t *testing.T) {
	now := time.Date(2025, 4, 9, 15, 0, 0, 0, time.UTC)
	r, _ := New("Work", now)
	r = r.WithComment("kept nowhere")

	edited, err := r.Edited("  Gym ", "warmup, cardio, stretch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edited.Activity != "Gym" {
		t.Fatalf("expected Gym, got %q", edited.Activity)
	}
	want := []string{"warmup", "cardio", "stretch"}
	if len(edited.Comments) != len(want) {
		t.Fatalf("expected %v, got %#v", want, edited.Comments)
	}
	for i := range want {
		if edited.Comments[i] != want[i] {
			t.Fatalf("expected %v, got %#v", want, edited.Comments)
		}
	}
	if !edited.Timestamp.Equal(now) {
		t.Fatalf("edit must not touch the timestamp: %v", edited.Timestamp)
	}
	if r.Activity != "Work" || len(r.Comments) != 1 {
		t.Fatalf("original record mutated: %#v", r)
	}
}

func TestEditedEmptyActivity(t *testing.T) {
	r, _ := New("Work", time.Now())
	if _, err := r.Edited("   ", "a, b"); !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("expected ErrInvalidActivity, got %v", err)
	}
}

func TestSplitCommentsDropsEmpties(t *testing.T) {
	got := SplitComments(" , warmup ,, cardio , ")
	if len(got) != 2 || got[0] != "warmup" || got[1] != "cardio" {
		t.Fatalf("expected [warmup cardio], got %#v", got)
	}
	if got := SplitComments(""); len(got) != 0 {
		t.Fatalf("expected no comments, got %#v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r, _ := New("Work", time.Now())
	r = r.WithComment("a")
	c := r.Clone()
	c.Comments[0] = "changed"
	if r.Comments[0] != "a" {
		t.Fatalf("clone shares storage with original")
	}
}
