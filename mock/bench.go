package mock

import (
	"context"

	"github.com/fwojciec/artex"
)

var _ artex.BenchmarkService = (*BenchmarkService)(nil)

// BenchmarkService is a mock implementation of artex.BenchmarkService.
type BenchmarkService struct {
	CreateRunFn   func(ctx context.Context, run *artex.BenchmarkRun) error
	FindRunByIDFn func(ctx context.Context, id string) (*artex.BenchmarkRun, error)
	FindRunsFn    func(ctx context.Context, filter artex.BenchmarkRunFilter) ([]*artex.BenchmarkRun, error)
}

func (s *BenchmarkService) CreateRun(ctx context.Context, run *artex.BenchmarkRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *BenchmarkService) FindRunByID(ctx context.Context, id string) (*artex.BenchmarkRun, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *BenchmarkService) FindRuns(ctx context.Context, filter artex.BenchmarkRunFilter) ([]*artex.BenchmarkRun, error) {
	return s.FindRunsFn(ctx, filter)
}

var _ artex.Converter = (*Converter)(nil)

// Converter is a mock implementation of artex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
