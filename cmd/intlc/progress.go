package main

import (
	"fmt"
	"os"
	"strings"

	"intlc/internal/pipeline"
	"intlc/internal/ui"
)

// useProgress разбирает --progress; auto включает UI, только если stderr - терминал.
func useProgress(mode string, quiet bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return !quiet && isTerminal(os.Stderr), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --progress value %q (expected auto|on|off)", mode)
	}
}

// runWithProgress runs work, rendering its events with the progress view
// when enabled. work receives a nil sink otherwise.
func runWithProgress(enabled bool, title string, files []string, work func(pipeline.ProgressSink) error) error {
	if !enabled {
		return work(nil)
	}
	events := make(chan pipeline.Event, 256)
	outcome := make(chan error, 1)
	go func() {
		err := work(pipeline.ChannelSink{Ch: events})
		close(events)
		outcome <- err
	}()

	wd, _ := os.Getwd()
	uiErr := ui.Run(os.Stderr, title, files, wd, events)
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не заблокировались
		for range events {
		}
	}
	err := <-outcome
	if uiErr != nil && err == nil {
		return uiErr
	}
	return err
}
