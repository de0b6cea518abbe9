package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/journal"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// localDeps holds the collaborators of a local session and how to release them.
type localDeps struct {
	tui.Deps
	closers []func()
}

func (d *localDeps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// openLocalDeps opens every optional collaborator. Failures are reported as
// warnings and the collaborator is left out.
func openLocalDeps(logFile string, mute bool) *localDeps {
	d := &localDeps{}
	d.Player = os.Getenv("USER")

	d.Logger = log.New(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			d.Logger = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "runner",
			})
			d.closers = append(d.closers, func() { f.Close() })
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		d.Store = store
		d.closers = append(d.closers, func() { store.Close() })
	}

	if flagJournal != "" {
		jw := journal.NewWriter(flagJournal)
		d.Journal = jw
		d.closers = append(d.closers, func() {
			if err := jw.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not close journal: %v\n", err)
			}
		})
	}

	if !mute {
		cfg := audio.LoadConfig()
		sm := audio.NewSoundManager(cfg)
		if err := sm.Initialize(); err != nil {
			d.Logger.Warn("audio disabled", "error", err)
		} else if cfg.Enabled {
			d.Audio = sm
			d.closers = append(d.closers, sm.Cleanup)
		}
	}

	return d
}

// runtimeConfig sizes the playfield from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
