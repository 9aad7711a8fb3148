package main

import (
	"fmt"

	"github.com/fwojciec/artex"
)

// Run executes the bench command.
func (c *BenchCmd) Run(deps *Dependencies) error {
	run, err := deps.Runner.Run(deps.Ctx, c.URLs)
	if err != nil {
		return err
	}

	if deps.Benchmarks != nil {
		if err := deps.Benchmarks.CreateRun(deps.Ctx, run); err != nil {
			return fmt.Errorf("failed to save benchmark run: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Saved run %s (url set %s)\n", run.ID, run.URLSetHash)
	}

	fmt.Fprintf(deps.Stdout, "%-50s %12s %12s %12s %12s\n",
		"URL", "structured", "traditional", "hybrid", "winner")
	for _, rec := range run.Records {
		fmt.Fprintf(deps.Stdout, "%-50s %12s %12s %12s %12s\n",
			truncate(rec.URL, 50),
			formatStrategy(rec.StructuredTime.Milliseconds(), rec.StructuredOK),
			formatStrategy(rec.TraditionalTime.Milliseconds(), rec.TraditionalOK),
			formatStrategy(rec.HybridTime.Milliseconds(), rec.HybridOK),
			rec.Winner,
		)
	}

	return nil
}

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := artex.BenchmarkRunFilter{Limit: c.Limit}
	if c.Hash != "" {
		filter.URLSetHash = &c.Hash
	}

	runs, err := deps.Benchmarks.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No benchmark runs stored.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%-36s %-16s %6s %s\n", "ID", "URL SET", "URLS", "CREATED")
	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%-36s %-16s %6d %s\n",
			run.ID, run.URLSetHash, run.URLCount, run.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func formatStrategy(ms int64, ok bool) string {
	if !ok {
		return "failed"
	}
	return fmt.Sprintf("%dms", ms)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
