// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/awesome-answers/db"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	s := NewSQLStore(conn, db.DialectSQLite)
	require.NoError(t, s.EnsureSchema(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func newPostgresStore(t *testing.T) *SQLStore {
	t.Helper()

	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}

	conn, err := sql.Open("postgres", url)
	require.NoError(t, err)

	_, err = conn.Exec("DROP TABLE IF EXISTS question CASCADE")
	require.NoError(t, err)

	s := NewSQLStore(conn, db.DialectPostgres)
	require.NoError(t, s.EnsureSchema(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore(t *testing.T) {
	runStoreContract(t, newSQLiteStore(t))
}

func TestPostgresStore(t *testing.T) {
	runStoreContract(t, newPostgresStore(t))
}
