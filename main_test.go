package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/listpager/internal/app"
	"github.com/atomicstack/listpager/internal/config"
	"github.com/atomicstack/listpager/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func testConfig(source string) config.Config {
	return config.Config{
		App: app.Config{
			Source:   source,
			PageSize: 15,
			Display:  "accent",
			Match:    app.MatchFuzzy,
			Query:    "abc",
			Watch:    2 * time.Second,
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags:   map[string]string{"file": source, "pageSize": "15"},
		Args:    []string{"-page-size", "15", "-match", "fuzzy", source},
	}
}

func TestStartupTracePayloadCarriesRunSettings(t *testing.T) {
	payload := startupTracePayload(testConfig("items.txt"), ttyDetails{})

	if payload["source"] != "items.txt" {
		t.Fatalf("expected source items.txt, got %v", payload["source"])
	}
	if payload["pageSize"] != 15 {
		t.Fatalf("expected page size 15, got %v", payload["pageSize"])
	}
	if payload["match"] != app.MatchFuzzy {
		t.Fatalf("expected fuzzy match, got %v", payload["match"])
	}
	if payload["display"] != "accent" || payload["query"] != "abc" {
		t.Fatalf("unexpected display/query %v/%v", payload["display"], payload["query"])
	}
	if payload["watch"] != "2s" {
		t.Fatalf("expected watch 2s, got %v", payload["watch"])
	}
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatal("expected flags map in payload")
	}
	if flags["trace"] != true || flags["logFile"] != "trace.log" || flags["pageSize"] != "15" {
		t.Fatalf("unexpected flags %v", flags)
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatal("expected tty details in payload")
	}
}

func TestStartupTracePayloadStdinSource(t *testing.T) {
	payload := startupTracePayload(testConfig("-"), ttyDetails{})
	if payload["source"] != "stdin" {
		t.Fatalf("expected stdin source, got %v", payload["source"])
	}
	if _, ok := payload["watch"]; ok {
		t.Fatal("expected no watch interval for stdin")
	}
}

func TestCheckSourceRejectsInteractiveStdin(t *testing.T) {
	interactive := ttyDetails{Probes: []ttyProbeResult{{Name: "stdin", IsTerminal: true}}}
	piped := ttyDetails{Probes: []ttyProbeResult{{Name: "stdin"}}}

	err := checkSource(app.Config{Source: "-"}, interactive)
	var loadErr *app.LoadError
	if !errors.As(err, &loadErr) || !errors.Is(err, errNoItems) {
		t.Fatalf("expected load error for interactive stdin, got %v", err)
	}
	if err := checkSource(app.Config{Source: "-"}, piped); err != nil {
		t.Fatalf("expected piped stdin accepted, got %v", err)
	}
	if err := checkSource(app.Config{Source: "items.txt"}, interactive); err != nil {
		t.Fatalf("expected file source accepted, got %v", err)
	}
}

func TestReportErrorExitCodes(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "listpager.log"))
	defer logging.Configure("")
	if code := reportError(&app.LoadError{Source: "-", Err: errNoItems}); code != exitSource {
		t.Fatalf("expected exit %d for source errors, got %d", exitSource, code)
	}
	if code := reportError(errors.New("run program: boom")); code != exitRuntime {
		t.Fatalf("expected exit %d for runtime errors, got %d", exitRuntime, code)
	}
}
