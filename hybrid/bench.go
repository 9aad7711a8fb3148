package hybrid

import (
	"context"
	"encoding/hex"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/artex"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultBenchConcurrency bounds how many URLs are benchmarked at once.
const DefaultBenchConcurrency = 4

// BenchmarkRunner races the three parsing strategies against the same URL
// set for regression and tuning purposes. Strategies for one URL run
// sequentially for clean timing isolation; different URLs run in parallel.
type BenchmarkRunner struct {
	Fetcher     artex.Fetcher
	Structured  artex.StructuredExtractor
	Traditional artex.ContentParser
	Parser      artex.ArticleParser

	// Limiter, when set, throttles fetches per domain.
	Limiter artex.DomainLimiter

	// Concurrency bounds parallel URLs. Defaults to DefaultBenchConcurrency.
	Concurrency int
}

// Run benchmarks every URL and returns the assembled run.
// A strategy failing on one URL is recorded, not propagated; Run itself
// fails only on context cancellation.
func (r *BenchmarkRunner) Run(ctx context.Context, urls []string) (*artex.BenchmarkRun, error) {
	run := &artex.BenchmarkRun{
		ID:         uuid.New().String(),
		URLSetHash: hashURLSet(urls),
		URLCount:   len(urls),
		CreatedAt:  time.Now().UTC(),
		Records:    make([]*artex.BenchmarkRecord, len(urls)),
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultBenchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			rec, err := r.benchmarkURL(ctx, url)
			if err != nil {
				return err
			}
			rec.RunID = run.ID
			run.Records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return run, nil
}

// benchmarkURL times the three strategies for one URL. Each strategy
// performs its own fetch so the timings reflect real end-to-end cost.
func (r *BenchmarkRunner) benchmarkURL(ctx context.Context, url string) (*artex.BenchmarkRecord, error) {
	rec := &artex.BenchmarkRecord{
		ID:  uuid.New().String(),
		URL: url,
	}

	// Structured-only.
	begin := time.Now()
	if html, err := r.fetch(ctx, url); err == nil {
		a, err := r.Structured.ExtractStructured(html, url)
		rec.StructuredOK = err == nil && !a.IsEmpty() && a.BestText() != ""
	}
	rec.StructuredTime = time.Since(begin)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Traditional-only.
	begin = time.Now()
	if html, err := r.fetch(ctx, url); err == nil {
		_, err := r.Traditional.ParseContent(html, url)
		rec.TraditionalOK = err == nil
	}
	rec.TraditionalTime = time.Since(begin)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Full hybrid orchestrator.
	begin = time.Now()
	if err := r.waitLimiter(ctx, url); err == nil {
		_, err := r.Parser.ParseArticle(ctx, url)
		rec.HybridOK = err == nil
	}
	rec.HybridTime = time.Since(begin)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec.Winner = pickWinner(rec)
	return rec, nil
}

func (r *BenchmarkRunner) fetch(ctx context.Context, url string) (string, error) {
	if err := r.waitLimiter(ctx, url); err != nil {
		return "", err
	}
	return r.Fetcher.Fetch(ctx, url)
}

func (r *BenchmarkRunner) waitLimiter(ctx context.Context, url string) error {
	if r.Limiter == nil {
		return nil
	}
	return r.Limiter.Wait(ctx, artex.Domain(url))
}

// pickWinner favors the fastest strategy that is good enough: structured
// when it succeeded and beat traditional on time, hybrid when its overhead
// stayed within 1.2x of the slower single strategy, traditional otherwise.
func pickWinner(rec *artex.BenchmarkRecord) artex.Winner {
	switch {
	case rec.StructuredOK && rec.StructuredTime < rec.TraditionalTime:
		return artex.WinnerStructured
	case rec.HybridOK && rec.HybridTime <= slower(rec)*12/10:
		return artex.WinnerHybrid
	case rec.TraditionalOK:
		return artex.WinnerTraditional
	}
	return artex.WinnerNone
}

func slower(rec *artex.BenchmarkRecord) time.Duration {
	return max(rec.StructuredTime, rec.TraditionalTime)
}

// hashURLSet fingerprints a URL list, order-independently, so runs over
// the same set are comparable across time.
func hashURLSet(urls []string) string {
	sorted := slices.Clone(urls)
	slices.Sort(sorted)

	h := xxhash.New()
	for _, u := range sorted {
		h.WriteString(u)
		h.Write([]byte{0})
	}
	sum := h.Sum64()

	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
