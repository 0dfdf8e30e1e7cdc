package store

// Run queries
const (
	queryInsertRun = `
		INSERT INTO runs (
			id, pool, workload, size, workers,
			value, tasks, steals, duration_ns,
			failed_steal_rounds, sleeps, violations, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryDeleteRun = `DELETE FROM runs WHERE id = ?`
)

var runColumns = []string{
	"id", "pool", "workload", "size", "workers",
	"value", "tasks", "steals", "duration_ns",
	"failed_steal_rounds", "sleeps", "violations", "created_at",
}
