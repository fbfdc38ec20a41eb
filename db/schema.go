// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Supported SQL dialects
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites ? placeholders into the form the dialect expects.
// PostgreSQL uses $1, $2, ...; SQLite accepts ? as-is.
func Rebind(dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Both PostgreSQL and SQLite accept this DDL.
const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL CONSTRAINT question_title_required CHECK (length(trim(title)) > 0),
    body TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_created_at ON question(created_at);
`
