package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/artex"
	"github.com/fwojciec/artex/goquery"
	"github.com/fwojciec/artex/htmltomarkdown"
	"github.com/fwojciec/artex/hybrid"
	artexhttp "github.com/fwojciec/artex/http"
	"github.com/fwojciec/artex/readability"
	"github.com/fwojciec/artex/rod"
	artexslog "github.com/fwojciec/artex/slog"
	"github.com/fwojciec/artex/sqlite"
	"github.com/fwojciec/artex/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for benchmark history. Set before calling Run().
	DBPath string

	// SQLite database used by the benchmark service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	deps.Config = artex.Config{Scoring: artex.DefaultWeights()}
	if cli.Config != "" {
		deps.Config, err = artex.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
	}

	// Wire command-specific dependencies.
	switch cmd {
	case "parse":
		fetcher, cleanup, err := newFetcher(cli.Parse.Browser, cli.Parse.Timeout, stderr)
		if err != nil {
			return err
		}
		defer cleanup()

		orchestrator := hybrid.NewParser(
			fetcher,
			goquery.NewExtractor(),
			newEngine(cli.Parse.Engine),
			hybrid.WithWeights(deps.Config.Scoring),
		)
		deps.Parser = artexslog.NewLoggingParser(orchestrator, deps.Logger)
		deps.Converter = htmltomarkdown.NewConverter()

	case "bench":
		fetcher := artexhttp.NewFetcher(artexhttp.WithTimeout(cli.Bench.Timeout))
		defer fetcher.Close()

		engine := newEngine(cli.Bench.Engine)
		orchestrator := hybrid.NewParser(
			fetcher,
			goquery.NewExtractor(),
			engine,
			hybrid.WithWeights(deps.Config.Scoring),
		)

		deps.Runner = &hybrid.BenchmarkRunner{
			Fetcher:     fetcher,
			Structured:  goquery.NewExtractor(),
			Traditional: engine,
			Parser:      artexslog.NewLoggingParser(orchestrator, deps.Logger),
			Limiter:     hybrid.NewDomainLimiter(cli.Bench.RPS),
			Concurrency: cli.Bench.Concurrency,
		}

		if cli.Bench.Save {
			if err := m.openDB(stderr); err != nil {
				return err
			}
			defer m.Close()
			deps.Benchmarks = sqlite.NewBenchmarkService(m.DB)
		}

	case "runs":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Benchmarks = sqlite.NewBenchmarkService(m.DB)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ARTEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// newFetcher selects plain HTTP or browser-based fetching.
func newFetcher(browser bool, timeout time.Duration, stderr io.Writer) (artex.Fetcher, func(), error) {
	if !browser {
		f := artexhttp.NewFetcher(artexhttp.WithTimeout(timeout))
		return f, func() { f.Close() }, nil
	}

	f, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newEngine selects the traditional parsing engine.
func newEngine(engine string) artex.ContentParser {
	if engine == "trafilatura" {
		return trafilatura.NewParser()
	}
	return readability.NewParser()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("ARTEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "artex.db"
	}
	dir := filepath.Join(home, ".artex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "artex.db")
}
