package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dgrok/internal/codebase"
)

func TestProgressCountsEvents(t *testing.T) {
	m := NewProgressModel("Parsing", []string{"A.pas", "B.pas", "C.pas"}, nil).(*progressModel)

	m.applyEvent(codebase.Event{File: "A.pas", Stage: codebase.StageParse, Status: codebase.StatusWorking})
	m.applyEvent(codebase.Event{File: "A.pas", Stage: codebase.StageCatalog, Status: codebase.StatusDone})
	m.applyEvent(codebase.Event{File: "B.pas", Stage: codebase.StageParse, Status: codebase.StatusError, Err: errors.New("boom")})
	m.applyEvent(codebase.Event{File: "Unknown.pas", Stage: codebase.StageParse, Status: codebase.StatusDone})
	m.applyEvent(codebase.Event{Stage: codebase.StageBatch, Status: codebase.StatusDone, Elapsed: 1500 * time.Microsecond})

	if m.counts["done"] != 1 || m.counts["error"] != 1 || m.counts["queued"] != 1 {
		t.Fatalf("counts = %v", m.counts)
	}
	if got := m.recent; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("recent = %v", got)
	}
	if m.elapsed != "2ms" {
		t.Fatalf("elapsed = %q", m.elapsed)
	}

	view := m.View()
	for _, want := range []string{"1 parsed, 1 errors, 1 queued", "A.pas", "boom"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "C.pas") {
		t.Errorf("untouched files are not listed:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate = %q", got)
	}
}
