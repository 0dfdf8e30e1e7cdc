// Package store implements the data access layer for forkpool's run history.
//
// Runs are persisted in DuckDB, either in a file under the configured data
// folder or in memory.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                           RunStore                              │
//	│                              ▼                                  │
//	│                      loggingInterceptor                         │
//	│                              ▼                                  │
//	│                     runs, schema_migrations                     │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
// Tables created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  runs              │  One row per finished benchmark run         │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	db, _ := store.NewDB(path)       // ":memory:" for tests
//	migrations.Run(ctx, db)          // creates runs, idempotent
//	s := store.NewStore(db)
//
// # RunStore
//
// Methods:
//   - Save(ctx, run) → error (plain INSERT, ids are unique)
//   - Get(ctx, id) → *models.Run, ResourceNotFoundError when missing
//   - List(ctx, opts...) → []models.Run, newest first
//   - Count(ctx, opts...) → int
//   - Delete(ctx, id) → error
//
// Durations are stored as nanoseconds in duration_ns.
//
// # List Options
//
// List and Count take ListOption functions that modify the squirrel
// SelectBuilder. Options can be combined:
//
//	runs, err := s.Runs().List(ctx,
//	    store.ByWorkload(models.WorkloadFib),
//	    store.BySizeRange(20, 30),
//	    store.WithLimit(50),
//	    store.WithOffset(0),
//	)
//
// Filtering Options:
//
//   - ByWorkload(workloads ...models.Workload)
//     SQL: WHERE workload IN (...). No arguments means no filter.
//
//   - ByPool(pool string)
//     SQL: WHERE pool = ?. Empty means no filter.
//
//   - BySizeRange(min, max int)
//     Range is [min, max).
//
// Pagination Options:
//
//   - WithLimit(limit uint64)
//   - WithOffset(offset uint64)
//
// # QueryInterceptor
//
// RunStore talks to the database through a QueryInterceptor that logs every
// statement at debug level with its arguments and duration.
package store
