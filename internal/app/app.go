package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/listpager/internal/backend"
	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/pager"
	"github.com/atomicstack/listpager/internal/source"
	"github.com/atomicstack/listpager/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Match modes accepted by Config.Match.
const (
	MatchSubstring = "substring"
	MatchFuzzy     = "fuzzy"
)

// Config describes user-provided application options.
type Config struct {
	Source     string
	PageSize   int
	Display    string
	Match      string
	Query      string
	Width      int
	Height     int
	ShowFooter bool
	// Watch is the polling interval for reloading Source; 0 disables it.
	Watch time.Duration
}

// LoadError reports that the item source could not be read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load items: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Run bootstraps and executes the Bubble Tea program. Failures to read the
// item source are returned as *LoadError.
func Run(cfg Config) error {
	entries, err := source.Load(cfg.Source, os.Stdin)
	if err != nil {
		return &LoadError{Source: cfg.Source, Err: err}
	}
	events.App.Loaded(cfg.Source, len(entries))

	opts := modelOptions(cfg)
	if cfg.Watch > 0 && cfg.Source != source.Stdin {
		watcher := backend.NewWatcher(cfg.Source, cfg.Watch, nil)
		defer watcher.Stop()
		opts.Reloads = watcher.Events()
	}
	model := ui.NewModel(entries, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Source == source.Stdin {
		// Items arrived on stdin, so keys have to come from the terminal.
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, programOpts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func modelOptions(cfg Config) ui.Options {
	opts := ui.Options{
		PageSize:   cfg.PageSize,
		Display:    pager.Display(cfg.Display),
		Query:      cfg.Query,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Source:     cfg.Source,
	}
	if cfg.Match == MatchFuzzy {
		opts.Matcher = pager.FuzzyMatcher
	}
	return opts
}
