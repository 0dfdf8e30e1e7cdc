package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/forkpool/internal/models"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

// RunStore persists finished benchmark runs.
type RunStore struct {
	db QueryInterceptor
}

func NewRunStore(db QueryInterceptor) *RunStore {
	return &RunStore{db: db}
}

// Save inserts run. A zero CreatedAt is stamped with the current time.
func (s *RunStore) Save(ctx context.Context, run *models.Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, queryInsertRun,
		run.ID,
		run.Pool,
		string(run.Workload),
		run.Size,
		run.Workers,
		run.Value,
		run.Tasks,
		run.Steals,
		run.Duration.Nanoseconds(),
		run.FailedStealRounds,
		run.Sleeps,
		run.Violations,
		run.CreatedAt,
	)
	return err
}

func (s *RunStore) Get(ctx context.Context, id string) (*models.Run, error) {
	query, args, err := sq.Select(runColumns...).From("runs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewRunNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// List returns runs newest first unless an option sorts otherwise.
func (s *RunStore) List(ctx context.Context, opts ...ListOption) ([]models.Run, error) {
	builder := sq.Select(runColumns...).From("runs").OrderBy("created_at DESC", "id")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

func (s *RunStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("runs")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (s *RunStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, queryDeleteRun, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewRunNotFoundError(id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*models.Run, error) {
	var (
		run        models.Run
		workload   string
		durationNs int64
	)
	err := row.Scan(
		&run.ID,
		&run.Pool,
		&workload,
		&run.Size,
		&run.Workers,
		&run.Value,
		&run.Tasks,
		&run.Steals,
		&durationNs,
		&run.FailedStealRounds,
		&run.Sleeps,
		&run.Violations,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	run.Workload = models.Workload(workload)
	run.Duration = time.Duration(durationNs)
	return &run, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByWorkload(workloads ...models.Workload) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(workloads) == 0 {
			return b
		}
		values := make([]string, 0, len(workloads))
		for _, w := range workloads {
			values = append(values, string(w))
		}
		return b.Where(sq.Eq{"workload": values})
	}
}

func ByPool(pool string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if pool == "" {
			return b
		}
		return b.Where(sq.Eq{"pool": pool})
	}
}

// BySizeRange keeps runs with min <= size < max.
func BySizeRange(min, max int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.And{
			sq.GtOrEq{"size": min},
			sq.Lt{"size": max},
		})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}
