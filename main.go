package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/listpager/internal/app"
	"github.com/atomicstack/listpager/internal/config"
	"github.com/atomicstack/listpager/internal/logging"
	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/source"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitRuntime = 1
	exitConfig  = 2
	exitSource  = 3
)

var errNoItems = errors.New("no items: pass a file or pipe items on stdin")

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(exitConfig)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := collectTTYDetails()
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := checkSource(runtimeCfg.App, tty); err != nil {
		os.Exit(reportError(err))
	}
	if err := app.Run(runtimeCfg.App); err != nil {
		os.Exit(reportError(err))
	}
}

// checkSource refuses to read items from an interactive stdin, which would
// block until the user typed EOF.
func checkSource(cfg app.Config, tty ttyDetails) error {
	if cfg.Source == source.Stdin && tty.stdinIsTerminal() {
		return &app.LoadError{Source: cfg.Source, Err: errNoItems}
	}
	return nil
}

// reportError logs err, prints it and returns the exit code for it.
func reportError(err error) int {
	logging.Error(err)
	var loadErr *app.LoadError
	if errors.As(err, &loadErr) {
		fmt.Fprintf(os.Stderr, "Item source error (%s): %v\n", sourceName(loadErr.Source), loadErr.Err)
		return exitSource
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitRuntime
}

func sourceName(path string) string {
	if path == source.Stdin {
		return "stdin"
	}
	return path
}

// startupTracePayload bundles the resolved run settings and runtime context
// for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"source":   sourceName(cfg.App.Source),
		"pageSize": cfg.App.PageSize,
		"match":    cfg.App.Match,
		"display":  cfg.App.Display,
		"query":    cfg.App.Query,
		"tty":      tty,
	}
	if cfg.App.Watch > 0 && cfg.App.Source != source.Stdin {
		payload["watch"] = cfg.App.Watch.String()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (d ttyDetails) stdinIsTerminal() bool {
	for _, probe := range d.Probes {
		if probe.Name == "stdin" {
			return probe.IsTerminal
		}
	}
	return false
}

// collectTTYDetails inspects the standard descriptors. Whether stdin is a
// terminal decides where items may come from; the first sized terminal is
// the viewport the program will get.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width, entry.Height = width, height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
