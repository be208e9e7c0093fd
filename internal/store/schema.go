package store

import (
	"context"
	"fmt"
)

var ddlPostgres = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		noc    TEXT PRIMARY KEY,
		region TEXT NOT NULL,
		notes  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id           SERIAL PRIMARY KEY,
		type         TEXT NOT NULL,
		year         INTEGER NOT NULL,
		country      TEXT NOT NULL,
		host         TEXT NOT NULL,
		start_date   TEXT,
		end_date     TEXT,
		duration     INTEGER,
		countries    INTEGER,
		events       INTEGER,
		sports       INTEGER,
		participants INTEGER,
		highlights   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,
}

var ddlSQLite = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		noc    TEXT PRIMARY KEY,
		region TEXT NOT NULL,
		notes  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		type         TEXT NOT NULL,
		year         INTEGER NOT NULL,
		country      TEXT NOT NULL,
		host         TEXT NOT NULL,
		start_date   TEXT,
		end_date     TEXT,
		duration     INTEGER,
		countries    INTEGER,
		events       INTEGER,
		sports       INTEGER,
		participants INTEGER,
		highlights   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,
}

// EnsureSchema creates the tables if they do not exist yet. The DDL is
// chosen by driver: postgres in production, sqlite for tests.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := ddlPostgres
	if s.db.DriverName() == "sqlite" {
		ddl = ddlSQLite
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
