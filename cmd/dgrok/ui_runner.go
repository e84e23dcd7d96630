package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dgrok/internal/codebase"
	"dgrok/internal/ui"
)

// progressEnabled decides whether a batch runs under the progress UI.
// "auto" enables it only when both stdout and stderr are terminals, so
// printed trees are never interleaved with redraws; --quiet always wins.
func progressEnabled(value string, quiet bool, interactive func() bool) (bool, error) {
	var on bool
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on":
		on = true
	case "off":
	case "", "auto":
		on = interactive()
	default:
		return false, fmt.Errorf("invalid --progress value %q (expected auto|on|off)", value)
	}
	return on && !quiet, nil
}

func interactiveOutput() bool {
	return isTerminal(os.Stderr) && isTerminal(os.Stdout)
}

func runBatchWithUI(ctx context.Context, title string, b batch) (*codebase.CodeBase, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan codebase.Event, 256)
	cb := b.codeBase(codebase.ChannelSink{Ch: events})
	outcomeCh := make(chan error, 1)

	go func() {
		err := cb.ParseFiles(ctx, b.files, b.opts.ParserThreadCount)
		outcomeCh <- err
		close(events)
	}()

	model := ui.NewProgressModel(title, b.files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()

	// после выхода из UI (в том числе по Ctrl-C) батч не должен застрять на отправке
	cancel()
	go func() {
		for range events {
		}
	}()
	err := <-outcomeCh
	if uiErr != nil {
		return cb, uiErr
	}
	return cb, err
}
