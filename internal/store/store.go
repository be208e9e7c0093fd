package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is the expected outcome of a keyed lookup that matched no row.
// Callers distinguish it from storage faults with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous signals that a primary-key lookup matched more than one row.
var ErrAmbiguous = errors.New("ambiguous result: multiple rows matched")

// Store provides per-request transactional sessions over the database
type Store struct {
	db *sqlx.DB
}

// New creates a new store
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Begin opens a transactional session. Each request cycle owns exactly one
// session; sessions are never shared across requests.
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Session wraps a single database transaction. Nothing staged through a
// session is durable or visible to other sessions until Commit.
type Session struct {
	tx   *sqlx.Tx
	done bool
}

// Commit flushes all staged mutations
func (s *Session) Commit() error {
	if s.done {
		return errors.New("session already closed")
	}
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback discards the session. Safe to defer: after Commit it is a no-op.
func (s *Session) Rollback() {
	if s.done {
		return
	}
	s.done = true
	_ = s.tx.Rollback()
}
