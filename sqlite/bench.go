package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/fwojciec/artex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artex.BenchmarkService = (*BenchmarkService)(nil)

// BenchmarkService implements artex.BenchmarkService using SQLite.
type BenchmarkService struct {
	db *DB
}

// NewBenchmarkService creates a new BenchmarkService.
func NewBenchmarkService(db *DB) *BenchmarkService {
	return &BenchmarkService{db: db}
}

// CreateRun stores a run together with its records in one transaction.
func (s *BenchmarkService) CreateRun(ctx context.Context, run *artex.BenchmarkRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := sq.Insert("benchmark_runs").
		Columns("id", "url_set_hash", "url_count", "created_at").
		Values(run.ID, run.URLSetHash, run.URLCount, run.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	for _, rec := range run.Records {
		if rec == nil {
			continue
		}
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		rec.RunID = run.ID

		query, args, err := sq.Insert("benchmark_records").
			Columns("id", "run_id", "url",
				"structured_ms", "structured_ok",
				"traditional_ms", "traditional_ok",
				"hybrid_ms", "hybrid_ok", "winner").
			Values(rec.ID, rec.RunID, rec.URL,
				rec.StructuredTime.Milliseconds(), rec.StructuredOK,
				rec.TraditionalTime.Milliseconds(), rec.TraditionalOK,
				rec.HybridTime.Milliseconds(), rec.HybridOK, string(rec.Winner)).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run and its records.
func (s *BenchmarkService) FindRunByID(ctx context.Context, id string) (*artex.BenchmarkRun, error) {
	query, args, err := sq.Select("id", "url_set_hash", "url_count", "created_at").
		From("benchmark_runs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, artex.Errorf(artex.ENOTFOUND, "benchmark run not found")
	}
	if err != nil {
		return nil, err
	}

	run.Records, err = s.findRecords(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first, without
// their records.
func (s *BenchmarkService) FindRuns(ctx context.Context, filter artex.BenchmarkRunFilter) ([]*artex.BenchmarkRun, error) {
	q := sq.Select("id", "url_set_hash", "url_count", "created_at").
		From("benchmark_runs").
		OrderBy("created_at DESC")

	if filter.URLSetHash != nil {
		q = q.Where(sq.Eq{"url_set_hash": *filter.URLSetHash})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*artex.BenchmarkRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (s *BenchmarkService) findRecords(ctx context.Context, runID string) ([]*artex.BenchmarkRecord, error) {
	query, args, err := sq.Select("id", "run_id", "url",
		"structured_ms", "structured_ok",
		"traditional_ms", "traditional_ok",
		"hybrid_ms", "hybrid_ok", "winner").
		From("benchmark_records").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("url ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*artex.BenchmarkRecord{}
	for rows.Next() {
		var rec artex.BenchmarkRecord
		var structuredMs, traditionalMs, hybridMs int64
		var winner string

		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.URL,
			&structuredMs, &rec.StructuredOK,
			&traditionalMs, &rec.TraditionalOK,
			&hybridMs, &rec.HybridOK, &winner); err != nil {
			return nil, err
		}

		rec.StructuredTime = time.Duration(structuredMs) * time.Millisecond
		rec.TraditionalTime = time.Duration(traditionalMs) * time.Millisecond
		rec.HybridTime = time.Duration(hybridMs) * time.Millisecond
		rec.Winner = artex.Winner(winner)

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanRun.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*artex.BenchmarkRun, error) {
	var run artex.BenchmarkRun
	var createdAt string

	if err := row.Scan(&run.ID, &run.URLSetHash, &run.URLCount, &createdAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, artex.Errorf(artex.EINTERNAL, "failed to parse created_at: %v", err)
	}
	run.CreatedAt = t

	return &run, nil
}
