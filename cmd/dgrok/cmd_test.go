package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"testing"

	"dgrok/internal/config"
)

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.pas"), "unit A; interface implementation end.")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "sub", "B.pas"), "unit B; interface implementation end.")
	opts := config.Defaults()

	files, err := collectFiles(opts, []string{root})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{filepath.Join(root, "A.pas")}; !slices.Equal(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	files, err = collectFiles(opts, []string{filepath.Join(root, "**"), filepath.Join(root, "A.pas")})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(root, "A.pas"), filepath.Join(root, "sub", "B.pas")}
	if !slices.Equal(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	if _, err := collectFiles(opts, []string{filepath.Join(root, "missing.pas")}); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestBatchRun(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "Good.pas")
	bad := filepath.Join(root, "Bad.pas")
	writeFile(t, good, "unit Good; interface implementation end.")
	writeFile(t, bad, "unit Bad; interface implementation")

	opts := config.Defaults()
	opts.ParserThreadCount = 2
	cb, err := batch{opts: opts, files: []string{bad, good}}.run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cb.UnitCount() != 1 || cb.ErrorCount() != 1 {
		t.Fatalf("codebase = %s", cb)
	}
	if s := summary(cb); !strings.HasPrefix(s, "1 parsed (1 units, 0 projects), 1 errors") {
		t.Fatalf("summary = %q", s)
	}
}

func TestProgressEnabled(t *testing.T) {
	tty := func() bool { return true }
	pipe := func() bool { return false }
	cases := []struct {
		value       string
		quiet       bool
		interactive func() bool
		want        bool
	}{
		{"", false, tty, true},
		{"AUTO", false, pipe, false},
		{"on", false, pipe, true},
		{" off ", false, tty, false},
		{"on", true, tty, false},
	}
	for _, tc := range cases {
		got, err := progressEnabled(tc.value, tc.quiet, tc.interactive)
		if err != nil || got != tc.want {
			t.Errorf("progressEnabled(%q, quiet=%v) = %v, %v; want %v", tc.value, tc.quiet, got, err, tc.want)
		}
	}
	if _, err := progressEnabled("maybe", false, tty); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestCollectBuildInfo(t *testing.T) {
	stamp := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.25.1",
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	}
	info := collectBuildInfo(stamp)
	if info.Tool != "dgrok" || info.GitCommit != "abc123" || info.BuildDate != "2026-01-02T03:04:05Z" || info.GoVersion != "go1.25.1" {
		t.Fatalf("info = %+v", info)
	}

	none := func() (*debug.BuildInfo, bool) { return nil, false }
	if info := collectBuildInfo(none); info.GoVersion != "" || info.Version == "" {
		t.Fatalf("info without build info = %+v", info)
	}
}

func TestRenderVersionPretty(t *testing.T) {
	var buf bytes.Buffer
	info := buildInfo{Tool: "dgrok", Version: "1.2.3", GitCommit: "abc123"}
	if err := renderVersionPretty(&buf, info, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "commit: abc123\n") || !strings.Contains(out, "built:  unknown\n") {
		t.Fatalf("output = %q", out)
	}
}
