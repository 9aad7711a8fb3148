package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/artex"
	"github.com/fwojciec/artex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an in-memory database that is torn down with the test.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

func benchmarkRun(created time.Time) *artex.BenchmarkRun {
	return &artex.BenchmarkRun{
		URLSetHash: "0011223344556677",
		URLCount:   2,
		CreatedAt:  created,
		Records: []*artex.BenchmarkRecord{
			{
				URL:             "https://example.com/one",
				StructuredTime:  120 * time.Millisecond,
				StructuredOK:    true,
				TraditionalTime: 340 * time.Millisecond,
				TraditionalOK:   true,
				HybridTime:      400 * time.Millisecond,
				HybridOK:        true,
				Winner:          artex.WinnerStructured,
			},
			{
				URL:             "https://example.com/two",
				StructuredTime:  80 * time.Millisecond,
				StructuredOK:    false,
				TraditionalTime: 290 * time.Millisecond,
				TraditionalOK:   true,
				HybridTime:      310 * time.Millisecond,
				HybridOK:        true,
				Winner:          artex.WinnerHybrid,
			},
		},
	}
}

func TestBenchmarkService_CreateAndFindRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewBenchmarkService(db)
	ctx := context.Background()

	run := benchmarkRun(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, s.CreateRun(ctx, run))
	require.NotEmpty(t, run.ID)

	got, err := s.FindRunByID(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "0011223344556677", got.URLSetHash)
	assert.Equal(t, 2, got.URLCount)
	assert.True(t, got.CreatedAt.Equal(run.CreatedAt))

	require.Len(t, got.Records, 2)
	one := got.Records[0]
	assert.Equal(t, "https://example.com/one", one.URL)
	assert.Equal(t, run.ID, one.RunID)
	assert.Equal(t, 120*time.Millisecond, one.StructuredTime)
	assert.True(t, one.StructuredOK)
	assert.Equal(t, artex.WinnerStructured, one.Winner)
	assert.Equal(t, artex.WinnerHybrid, got.Records[1].Winner)
}

func TestBenchmarkService_CreateRunValidates(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewBenchmarkService(db)

	err := s.CreateRun(context.Background(), &artex.BenchmarkRun{})
	require.Error(t, err)
	assert.Equal(t, artex.EINVALID, artex.ErrorCode(err))
}

func TestBenchmarkService_FindRunByIDNotFound(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewBenchmarkService(db)

	_, err := s.FindRunByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, artex.ENOTFOUND, artex.ErrorCode(err))
}

func TestBenchmarkService_FindRuns(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewBenchmarkService(db)
	ctx := context.Background()

	older := benchmarkRun(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	newer := benchmarkRun(time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC))
	newer.URLSetHash = "8899aabbccddeeff"
	require.NoError(t, s.CreateRun(ctx, older))
	require.NoError(t, s.CreateRun(ctx, newer))

	runs, err := s.FindRuns(ctx, artex.BenchmarkRunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Newest first, without records.
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
	assert.Empty(t, runs[0].Records)

	hash := "8899aabbccddeeff"
	runs, err = s.FindRuns(ctx, artex.BenchmarkRunFilter{URLSetHash: &hash})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, newer.ID, runs[0].ID)

	runs, err = s.FindRuns(ctx, artex.BenchmarkRunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
