package app

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/atomicstack/listpager/internal/pager"
)

func TestModelOptionsCarriesConfig(t *testing.T) {
	opts := modelOptions(Config{
		Source:     "items.txt",
		PageSize:   7,
		Display:    "accent",
		Match:      MatchSubstring,
		Query:      "abc",
		Width:      80,
		Height:     24,
		ShowFooter: true,
	})
	if opts.PageSize != 7 || opts.Display != pager.Display("accent") || opts.Query != "abc" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Width != 80 || opts.Height != 24 || !opts.ShowFooter || opts.Source != "items.txt" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Matcher != nil {
		t.Fatal("expected default matcher for substring mode")
	}
	if opts.Reloads != nil {
		t.Fatal("expected no reload channel by default")
	}
}

func TestModelOptionsFuzzy(t *testing.T) {
	opts := modelOptions(Config{Match: MatchFuzzy})
	if opts.Matcher == nil {
		t.Fatal("expected fuzzy matcher")
	}
	if !opts.Matcher("entry 45", "e45") {
		t.Fatal("expected fuzzy matcher to match out-of-run characters")
	}
}

func TestRunFailsOnMissingSource(t *testing.T) {
	err := Run(Config{Source: "/nonexistent/listpager/items.txt", PageSize: 20})
	if err == nil {
		t.Fatal("expected load error")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if loadErr.Source != "/nonexistent/listpager/items.txt" || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected load error %+v", loadErr)
	}
	if !strings.Contains(err.Error(), "load items: read items from /nonexistent/listpager/items.txt") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
