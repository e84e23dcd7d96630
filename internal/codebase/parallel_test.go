package codebase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dgrok/internal/diag"
	"dgrok/internal/loader"
	"dgrok/internal/observ"
	"dgrok/internal/preproc"
)

// duplicateSources builds n files sharing k logical names.
func duplicateSources(n, k int) []Source {
	out := make([]Source, n)
	for i := range out {
		name := fmt.Sprintf("U%d", i%k)
		out[i] = Source{
			Name: fmt.Sprintf("dir%d/%s.pas", i, name),
			Text: fmt.Sprintf("unit %s; interface implementation end.", name),
		}
	}
	return out
}

func TestParseSourcesIsDeterministic(t *testing.T) {
	const n, k = 24, 5
	for _, threads := range []int{0, 1, 2, 8, 64} {
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			cb := New(preproc.NewDefines(), nil)
			require.NoError(t, cb.ParseSources(context.Background(), duplicateSources(n, k), threads))
			assert.Equal(t, k, cb.UnitCount())
			assert.Equal(t, k, cb.ParsedFileCount())
			assert.Equal(t, n-k, cb.ErrorCount())
			for _, e := range cb.Errors() {
				assert.Equal(t, diag.CatDuplicateFileName, diag.CodeOf(e.Content), e.FileName)
			}
			assert.Positive(t, cb.ParseDuration())
		})
	}
}

func TestParseSourcesIsolatesFailures(t *testing.T) {
	sources := []Source{
		{Name: "Good.pas", Text: "unit Good; interface implementation end."},
		{Name: "Bad.pas", Text: "unit Bad; interface"},
		{Name: "Lex.pas", Text: "unit Lex; interface ? implementation end."},
		{Name: "App.dpr", Text: "program App; uses Good; begin end."},
	}
	cb := New(preproc.NewDefines(), nil)
	require.NoError(t, cb.ParseSources(context.Background(), sources, 4))

	assert.Equal(t, 1, cb.UnitCount())
	assert.Equal(t, 1, cb.ProjectCount())
	assert.Equal(t, diag.SynExpected, diag.CodeOf(cb.ErrorByFileName("Bad.pas")))
	assert.Equal(t, diag.LexUnrecognizedChar, diag.CodeOf(cb.ErrorByFileName("Lex.pas")))
}

func TestParseFilesReadsThroughLoader(t *testing.T) {
	mem := loader.NewMemoryLoader(map[string]string{
		"A.pas": "unit A; interface implementation end.",
		"B.pas": "unit B; interface implementation end.",
	})
	cb := New(preproc.NewDefines(), mem)
	require.NoError(t, cb.ParseFiles(context.Background(), []string{"A.pas", "B.pas", "Missing.pas"}, 2))

	assert.Equal(t, 2, cb.UnitCount())
	err := cb.ErrorByFileName("Missing.pas")
	require.Error(t, err)
	assert.Equal(t, diag.IOLoadFile, diag.CodeOf(err))
}

func TestParseFilesNeedsLoader(t *testing.T) {
	cb := New(preproc.NewDefines(), nil)
	assert.Error(t, cb.ParseFiles(context.Background(), []string{"A.pas"}, 1))
}

func TestCancelledBatchStartsNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cb := New(preproc.NewDefines(), nil)
	err := cb.ParseSources(ctx, duplicateSources(10, 10), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cb.ParsedFileCount()+cb.ErrorCount())
}

func TestCancelMidBatchKeepsFinishedFiles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	sink := SinkFunc(func(evt Event) {
		if evt.Stage == StageCatalog {
			once.Do(cancel)
		}
	})
	cb := New(preproc.NewDefines(), nil, WithSink(sink))
	err := cb.ParseSources(ctx, duplicateSources(50, 50), 1)
	require.ErrorIs(t, err, context.Canceled)

	done := cb.ParsedFileCount() + cb.ErrorCount()
	assert.GreaterOrEqual(t, done, 1)
	assert.Less(t, done, 50)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	s.events = append(s.events, evt)
	s.mu.Unlock()
}

func TestBatchEvents(t *testing.T) {
	sink := &recordingSink{}
	cb := New(preproc.NewDefines(), nil, WithSink(sink))
	sources := []Source{
		{Name: "A.pas", Text: "unit A; interface implementation end."},
		{Name: "A2.pas", Text: "unit A; interface implementation end."},
		{Name: "Bad.pas", Text: "nonsense"},
	}
	require.NoError(t, cb.ParseSources(context.Background(), sources, 1))

	final := map[string]Event{}
	var batches int
	for _, evt := range sink.events {
		switch {
		case evt.Stage == StageBatch:
			batches++
			assert.Equal(t, StatusDone, evt.Status)
		case evt.Status == StatusDone || evt.Status == StatusError:
			final[evt.File] = evt
		}
	}
	assert.Equal(t, 1, batches)
	assert.Equal(t, StatusDone, final["A.pas"].Status)
	assert.Equal(t, StageCatalog, final["A2.pas"].Stage)
	assert.Equal(t, StatusError, final["A2.pas"].Status)
	assert.Equal(t, StageParse, final["Bad.pas"].Stage)
	assert.Error(t, final["Bad.pas"].Err)
	assert.Equal(t, StageBatch, sink.events[len(sink.events)-1].Stage)
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "A.pas", Status: StatusQueued})
	assert.Equal(t, "A.pas", (<-ch).File)
	ChannelSink{}.OnEvent(Event{})
}

func TestBatchMetrics(t *testing.T) {
	m := observ.NewMetrics()
	cb := New(preproc.NewDefines(), nil, WithMetrics(m))
	sources := append(duplicateSources(6, 3), Source{Name: "Bad.pas", Text: ""})
	require.NoError(t, cb.ParseSources(context.Background(), sources, 3))

	assert.InDelta(t, 3, m.FileCount(observ.OutcomeParsed), 0)
	assert.InDelta(t, 3, m.FileCount(observ.OutcomeDuplicate), 0)
	assert.InDelta(t, 1, m.FileCount(observ.OutcomeFailed), 0)
}
