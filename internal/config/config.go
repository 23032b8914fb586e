package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/listpager/internal/app"
	"github.com/atomicstack/listpager/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFile     = "LISTPAGER_FILE"
	envPageSize = "LISTPAGER_PAGE_SIZE"
	envDisplay  = "LISTPAGER_DISPLAY"
	envMatch    = "LISTPAGER_MATCH"
	envQuery    = "LISTPAGER_QUERY"
	envWidth    = "LISTPAGER_WIDTH"
	envHeight   = "LISTPAGER_HEIGHT"
	envFooter   = "LISTPAGER_FOOTER"
	envTrace    = "LISTPAGER_TRACE"
	envLogFile  = "LISTPAGER_LOG_FILE"
	envWatch    = "LISTPAGER_WATCH"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("listpager", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, source.Stdin), "items file (one per line, or a .yaml list); - reads stdin")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, 20), "number of items per page")
	display := fs.String("display", envOrDefault(env, envDisplay, "visible"), "display state restored on shown items")
	match := fs.String("match", envOrDefault(env, envMatch, app.MatchSubstring), "search mode: substring or fuzzy")
	query := fs.String("query", envOrDefault(env, envQuery, ""), "initial search query")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 0), "reload the items file when it changes, polling at this interval (0 disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 && !isSet(fs, "file") {
		*file = rest[0]
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watch < 0 {
		return Config{}, fmt.Errorf("watch must be >= 0 (got %s)", *watch)
	}

	cfg := Config{
		App: app.Config{
			Source:     *file,
			PageSize:   *pageSize,
			Display:    *display,
			Match:      strings.ToLower(strings.TrimSpace(*match)),
			Query:      *query,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Watch:      *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"file":     *file,
			"pageSize": strconv.Itoa(*pageSize),
			"display":  *display,
			"match":    *match,
			"query":    *query,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"watch":    watch.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configuration the pager cannot run with.
func Validate(cfg Config) error {
	if cfg.App.PageSize <= 0 {
		return fmt.Errorf("page-size must be > 0 (got %d)", cfg.App.PageSize)
	}
	switch cfg.App.Match {
	case app.MatchSubstring, app.MatchFuzzy:
	default:
		return fmt.Errorf("unknown match mode %q (want %s or %s)", cfg.App.Match, app.MatchSubstring, app.MatchFuzzy)
	}
	if strings.TrimSpace(cfg.App.Source) == "" {
		return fmt.Errorf("file must not be empty")
	}
	return nil
}
