// Package codebase parses many Delphi files into one catalog.
//
// A CodeBase keeps four catalogs: errors and parsed files keyed by file
// name, units and projects (programs, libraries, packages) keyed by logical
// name. All keys are case-insensitive. A file that fails to scan, filter or
// parse, or whose logical name is already taken, goes to the error catalog
// and never aborts the rest of a batch.
package codebase

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"dgrok/internal/ast"
	"dgrok/internal/diag"
	"dgrok/internal/names"
	"dgrok/internal/observ"
	"dgrok/internal/parser"
	"dgrok/internal/preproc"
	"dgrok/internal/source"
)

// CodeBase is safe for concurrent use.
type CodeBase struct {
	defines *preproc.Defines
	loader  preproc.IncludeLoader
	log     *slog.Logger
	metrics *observ.Metrics
	sink    ProgressSink

	mu          sync.Mutex
	errors      catalog[error]
	parsedFiles catalog[ast.Node]
	units       catalog[*ast.UnitNode]
	projects    catalog[ast.Node]
	parseDur    time.Duration
}

// Option configures a CodeBase.
type Option func(*CodeBase)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(cb *CodeBase) {
		if l != nil {
			cb.log = l
		}
	}
}

// WithMetrics records per-file and per-batch metrics into m.
func WithMetrics(m *observ.Metrics) Option {
	return func(cb *CodeBase) { cb.metrics = m }
}

// WithSink reports batch progress to s.
func WithSink(s ProgressSink) Option {
	return func(cb *CodeBase) { cb.sink = s }
}

// New creates an empty CodeBase. defines is the template every file starts
// from; it is cloned per file and never mutated. loader resolves include
// files and, for ParseFiles, the sources themselves; it may be nil.
func New(defines *preproc.Defines, loader preproc.IncludeLoader, opts ...Option) *CodeBase {
	if defines == nil {
		defines = preproc.NewDefines()
	}
	cb := &CodeBase{
		defines:     defines,
		loader:      loader,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		errors:      catalog[error]{},
		parsedFiles: catalog[ast.Node]{},
		units:       catalog[*ast.UnitNode]{},
		projects:    catalog[ast.Node]{},
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

// AddError records err against fileName, replacing an earlier error for
// the same file.
func (cb *CodeBase) AddError(fileName string, err error) {
	entry := NamedContent[error]{FileName: fileName, Name: fileName, Content: err}
	cb.mu.Lock()
	cb.errors[names.Fold(fileName)] = entry
	cb.mu.Unlock()
}

// AddFile parses text and catalogs the result. Failures go to the error
// catalog.
func (cb *CodeBase) AddFile(fileName, text string) {
	_ = cb.addFile(fileName, text)
}

// AddFileExpectingSuccess parses text and catalogs the tree, returning the
// first error instead of cataloging it.
func (cb *CodeBase) AddFileExpectingSuccess(fileName, text string) error {
	p := parser.FromText(text, fileName, cb.defines.Clone(), cb.loader)
	tree, err := p.Parse()
	if err != nil {
		return err
	}
	return cb.AddParsedFile(fileName, text, tree)
}

// AddParsedFile classifies an already parsed tree and inserts it. A unit
// goes to the unit catalog, anything else to the project catalog. When the
// file name or the logical name is taken the tree is not inserted anywhere
// and a diag.CatDuplicateFileName error is returned.
func (cb *CodeBase) AddParsedFile(fileName, text string, tree ast.Node) error {
	name := LogicalName(fileName, tree)
	key := names.Fold(name)

	fileKey := names.Fold(fileName)
	var existing string
	cb.mu.Lock()
	// имя файла, отличающееся только регистром, тоже занято
	if prev, ok := cb.parsedFiles[fileKey]; ok {
		existing = prev.FileName
	} else if unit, ok := tree.(*ast.UnitNode); ok {
		existing = insert(cb.units, key, NamedContent[*ast.UnitNode]{FileName: fileName, Name: name, Content: unit})
	} else {
		existing = insert(cb.projects, key, NamedContent[ast.Node]{FileName: fileName, Name: name, Content: tree})
	}
	if existing == "" {
		cb.parsedFiles[fileKey] = NamedContent[ast.Node]{FileName: fileName, Name: name, Content: tree}
	}
	cb.mu.Unlock()

	if existing != "" {
		loc := source.At(source.NewFile(fileName, text), 0)
		return diag.New(diag.CatDuplicateFileName, loc, "File '%s' has the same name as '%s'", fileName, existing)
	}
	return nil
}

// insert adds e under key unless it is taken; it returns the file name
// already holding key, or "" on success.
func insert[T any](c catalog[T], key string, e NamedContent[T]) string {
	if prev, ok := c[key]; ok {
		return prev.FileName
	}
	c[key] = e
	return ""
}

// addFile is AddFile reporting the outcome to metrics.
func (cb *CodeBase) addFile(fileName, text string) error {
	start := time.Now()
	err := cb.AddFileExpectingSuccess(fileName, text)
	elapsed := time.Since(start)
	switch {
	case err == nil:
		cb.metrics.ObserveFile(observ.OutcomeParsed, elapsed)
	case diag.CodeOf(err) == diag.CatDuplicateFileName:
		cb.metrics.ObserveFile(observ.OutcomeDuplicate, elapsed)
	default:
		cb.metrics.ObserveFile(observ.OutcomeFailed, elapsed)
	}
	if err != nil {
		cb.log.Debug("file rejected", "file", fileName, "code", diag.CodeOf(err).ID(), "err", err)
		cb.AddError(fileName, err)
	}
	return err
}

// ErrorCount returns the number of files in the error catalog.
func (cb *CodeBase) ErrorCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.errors)
}

// Errors returns the errors sorted by file name.
func (cb *CodeBase) Errors() []NamedContent[error] {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.errors.sorted()
}

// ErrorByFileName returns the error recorded for fileName, or nil.
func (cb *CodeBase) ErrorByFileName(fileName string) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	err, _ := cb.errors.lookup(fileName)
	return err
}

// ParsedFileCount returns the number of cataloged files.
func (cb *CodeBase) ParsedFileCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.parsedFiles)
}

// ParsedFileNames returns the cataloged file names, sorted.
func (cb *CodeBase) ParsedFileNames() []string {
	files := cb.ParsedFiles()
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.FileName
	}
	return out
}

// ParsedFiles returns every cataloged tree sorted by file name.
func (cb *CodeBase) ParsedFiles() []NamedContent[ast.Node] {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.parsedFiles.sorted()
}

// ParsedFileByFileName returns the tree cataloged for fileName.
func (cb *CodeBase) ParsedFileByFileName(fileName string) (ast.Node, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.parsedFiles.lookup(fileName)
}

// UnitCount returns the number of units.
func (cb *CodeBase) UnitCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.units)
}

// Units returns the units sorted by logical name.
func (cb *CodeBase) Units() []NamedContent[*ast.UnitNode] {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.units.sorted()
}

// UnitByName looks a unit up by logical name, ignoring case.
func (cb *CodeBase) UnitByName(name string) (*ast.UnitNode, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.units.lookup(name)
}

// ProjectCount returns the number of programs, libraries and packages.
func (cb *CodeBase) ProjectCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.projects)
}

// Projects returns the projects sorted by logical name.
func (cb *CodeBase) Projects() []NamedContent[ast.Node] {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.projects.sorted()
}

// ProjectByName looks a project up by logical name, ignoring case.
func (cb *CodeBase) ProjectByName(name string) (ast.Node, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.projects.lookup(name)
}

// ParseDuration returns the wall time of the last batch.
func (cb *CodeBase) ParseDuration() time.Duration {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.parseDur
}

func (cb *CodeBase) String() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return fmt.Sprintf("CodeBase{units: %d, projects: %d, errors: %d}", len(cb.units), len(cb.projects), len(cb.errors))
}
