// Package migrations applies the embedded SQL schema to a DuckDB database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var files embed.FS

const (
	createSchemaMigrations = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT now()
		)`

	queryAppliedVersions = `SELECT version FROM schema_migrations`

	queryRecordVersion = `INSERT INTO schema_migrations (version, name) VALUES (?, ?)`
)

type migration struct {
	version int
	name    string
	stmt    string
}

// Run applies every migration not yet recorded in schema_migrations, in
// version order. Each migration runs in its own transaction.
func Run(ctx context.Context, db *sql.DB) error {
	log := zap.S().Named("migrations")

	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	all, err := load()
	if err != nil {
		return err
	}

	for _, m := range all {
		if applied[m.version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		log.Infow("migration applied", "version", m.version, "name", m.name)
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, queryAppliedVersions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.stmt); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, queryRecordVersion, m.version, m.name); err != nil {
		return err
	}
	return tx.Commit()
}

// load reads sql/NNN_name.sql files sorted by version.
func load() ([]migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}

	var all []migration
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".sql")
		prefix, rest, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration file %q has no version prefix", e.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration file %q: %w", e.Name(), err)
		}
		stmt, err := files.ReadFile(path.Join("sql", e.Name()))
		if err != nil {
			return nil, err
		}
		all = append(all, migration{version: version, name: rest, stmt: string(stmt)})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].version < all[j].version })
	return all, nil
}
