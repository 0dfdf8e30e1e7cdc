package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db   *sql.DB
	runs *RunStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:   db,
		runs: NewRunStore(newLoggingInterceptor(db)),
	}
}

func (s *Store) Runs() *RunStore {
	return s.runs
}

func (s *Store) Close() error {
	return s.db.Close()
}
