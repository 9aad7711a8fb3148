package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/artex"
	"github.com/fwojciec/artex/hybrid"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config artex.Config

	Parser     artex.ArticleParser
	Runner     *hybrid.BenchmarkRunner
	Benchmarks artex.BenchmarkService
	Converter  artex.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Config  string `help:"Path to YAML config with scoring weights"`

	Parse     ParseCmd     `cmd:"" help:"Parse an article URL into a scored record"`
	Recommend RecommendCmd `cmd:"" help:"Show the parsing strategy recommendation for a URL's domain"`
	Bench     BenchCmd     `cmd:"" help:"Race parsing strategies against a URL list"`
	Runs      RunsCmd      `cmd:"" help:"List stored benchmark runs"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL     string        `arg:"" help:"Article URL"`
	Browser bool          `help:"Fetch with a headless browser (JavaScript rendering)"`
	Engine  string        `default:"readability" enum:"readability,trafilatura" help:"Traditional parsing engine"`
	Format  string        `default:"json" enum:"json,markdown" help:"Output format"`
	Timeout time.Duration `default:"10s" help:"Per-fetch timeout"`
}

// RecommendCmd is the "recommend" subcommand.
type RecommendCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// BenchCmd is the "bench" subcommand.
type BenchCmd struct {
	URLs        []string      `arg:"" help:"Article URLs to benchmark"`
	Engine      string        `default:"readability" enum:"readability,trafilatura" help:"Traditional parsing engine"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent URL limit"`
	RPS         float64       `default:"1" help:"Max requests per second per domain"`
	Timeout     time.Duration `default:"10s" help:"Per-fetch timeout"`
	Save        bool          `help:"Persist the run to the benchmark database"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Hash  string `help:"Only show runs over the URL set with this hash"`
	Limit int    `default:"20" help:"Maximum number of runs to list"`
}
