package codebase

import "time"

// Stage describes where a file is in a batch.
type Stage string

const (
	// StageRead is loading the file text.
	StageRead Stage = "read"
	// StageParse is scanning, filtering and parsing.
	StageParse Stage = "parse"
	// StageCatalog is classification and insertion.
	StageCatalog Stage = "catalog"
	// StageBatch marks events about the whole batch (File is empty).
	StageBatch Stage = "batch"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates a worker picked the file up.
	StatusWorking Status = "working"
	// StatusDone indicates the file was cataloged.
	StatusDone Status = "done"
	// StatusError indicates the file ended up in the error catalog.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole batch when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines and must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }
