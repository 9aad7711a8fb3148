package artex

import (
	"context"
	"time"
)

// Winner names the strategy that won a per-URL benchmark comparison.
type Winner string

const (
	WinnerStructured  Winner = "structured"
	WinnerTraditional Winner = "traditional"
	WinnerHybrid      Winner = "hybrid"
	WinnerNone        Winner = "none"
)

// BenchmarkRecord compares the three parsing strategies for one URL.
// Each strategy is timed independently; a failure in one does not abort
// the others.
type BenchmarkRecord struct {
	ID    string `json:"id"`
	RunID string `json:"runId"`
	URL   string `json:"url"`

	StructuredTime  time.Duration `json:"structuredTime"`
	StructuredOK    bool          `json:"structuredOk"`
	TraditionalTime time.Duration `json:"traditionalTime"`
	TraditionalOK   bool          `json:"traditionalOk"`
	HybridTime      time.Duration `json:"hybridTime"`
	HybridOK        bool          `json:"hybridOk"`

	Winner Winner `json:"winner"`
}

// BenchmarkRun groups the records of one benchmarking invocation.
// URLSetHash fingerprints the (sorted) input URL list so runs over the
// same set can be compared across time for regressions.
type BenchmarkRun struct {
	ID         string             `json:"id"`
	URLSetHash string             `json:"urlSetHash"`
	URLCount   int                `json:"urlCount"`
	CreatedAt  time.Time          `json:"createdAt"`
	Records    []*BenchmarkRecord `json:"records,omitempty"`
}

// Validate returns an error if the run contains invalid fields.
func (r *BenchmarkRun) Validate() error {
	if r.URLCount == 0 {
		return Errorf(EINVALID, "benchmark run requires at least one URL")
	}
	if r.URLSetHash == "" {
		return Errorf(EINVALID, "benchmark run URL set hash required")
	}
	return nil
}

// BenchmarkRunFilter selects benchmark runs.
type BenchmarkRunFilter struct {
	URLSetHash *string `json:"urlSetHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BenchmarkService persists benchmark runs for regression tracking.
type BenchmarkService interface {
	// CreateRun stores a run together with its records.
	CreateRun(ctx context.Context, run *BenchmarkRun) error

	// FindRunByID retrieves a run and its records.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*BenchmarkRun, error)

	// FindRuns retrieves runs matching the filter, newest first,
	// without their records.
	FindRuns(ctx context.Context, filter BenchmarkRunFilter) ([]*BenchmarkRun, error)
}
