package codebase

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dgrok/internal/diag"
	"dgrok/internal/observ"
	"dgrok/internal/source"
)

// Source is a file whose text is already in memory.
type Source struct {
	Name string
	Text string
}

// ParseFiles reads every file through the loader and adds it, using up to
// threads workers (NumCPU when threads <= 0). A read failure is cataloged
// as a diag.IOLoadFile error. When ctx is cancelled no further files are
// started, in-flight ones finish, and ctx.Err() is returned.
func (cb *CodeBase) ParseFiles(ctx context.Context, fileNames []string, threads int) error {
	if cb.loader == nil {
		return errors.New("codebase: ParseFiles needs a loader")
	}
	return cb.run(ctx, len(fileNames), threads, func(i int) {
		name := fileNames[i]
		cb.emit(Event{File: name, Stage: StageRead, Status: StatusWorking})
		text, err := cb.loader.Load(name)
		if err != nil {
			lerr := diag.Wrap(diag.IOLoadFile, source.At(source.NewFile(name, ""), 0), err)
			cb.metrics.ObserveFile(observ.OutcomeFailed, 0)
			cb.log.Debug("file unreadable", "file", name, "err", err)
			cb.AddError(name, lerr)
			cb.emit(Event{File: name, Stage: StageRead, Status: StatusError, Err: lerr})
			return
		}
		cb.parseOne(name, text)
	}, func(i int) string { return fileNames[i] })
}

// ParseSources adds already read sources, using up to threads workers.
// Cancellation behaves as in ParseFiles.
func (cb *CodeBase) ParseSources(ctx context.Context, sources []Source, threads int) error {
	return cb.run(ctx, len(sources), threads, func(i int) {
		cb.parseOne(sources[i].Name, sources[i].Text)
	}, func(i int) string { return sources[i].Name })
}

func (cb *CodeBase) parseOne(name, text string) {
	start := time.Now()
	cb.emit(Event{File: name, Stage: StageParse, Status: StatusWorking})
	err := cb.addFile(name, text)
	evt := Event{File: name, Stage: StageCatalog, Status: StatusDone, Elapsed: time.Since(start)}
	if err != nil {
		evt.Status = StatusError
		evt.Err = err
		if diag.CodeOf(err) != diag.CatDuplicateFileName {
			evt.Stage = StageParse
		}
	}
	cb.emit(evt)
}

// run drives n jobs through a bounded errgroup.
func (cb *CodeBase) run(ctx context.Context, n, threads int, job func(int), nameOf func(int) string) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	batch := uuid.NewString()
	start := time.Now()
	log := cb.log.With("batch", batch)
	log.Debug("batch started", "files", n, "threads", threads)

	for i := range n {
		cb.emit(Event{File: nameOf(i), Stage: StageRead, Status: StatusQueued})
	}

	// Воркеры не возвращают ошибок: сбой файла уходит в каталог
	var g errgroup.Group
	g.SetLimit(max(1, min(threads, n)))
	var cancelled error
	for i := range n {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		g.Go(func() error {
			job(i)
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	cb.mu.Lock()
	cb.parseDur = elapsed
	units, projects, errs := len(cb.units), len(cb.projects), len(cb.errors)
	cb.mu.Unlock()

	cb.metrics.SetCatalog(units, projects)
	cb.metrics.ObserveBatch(elapsed)
	log.Info("batch parsed",
		"files", n,
		"units", units,
		"projects", projects,
		"errors", errs,
		"elapsed", elapsed,
	)
	evt := Event{Stage: StageBatch, Status: StatusDone, Elapsed: elapsed}
	if cancelled != nil {
		evt.Status = StatusError
		evt.Err = cancelled
		log.Warn("batch cancelled", "err", cancelled)
	}
	cb.emit(evt)
	return cancelled
}

func (cb *CodeBase) emit(evt Event) {
	if cb.sink != nil {
		cb.sink.OnEvent(evt)
	}
}
