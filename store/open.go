// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/awesome-answers/cliparse"
	"github.com/danielhkuo/awesome-answers/db"
)

// Open connects to the backend named by cfg.DatabaseType and verifies the
// connection with a ping. The schema is not created; call EnsureSchema.
func Open(ctx context.Context, cfg cliparse.Config) (QuestionStore, error) {
	var s QuestionStore

	switch cfg.DatabaseType {
	case cliparse.DatabaseMongo:
		ms, err := ConnectMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		s = ms

	case cliparse.DatabasePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		s = NewSQLStore(conn, db.DialectPostgres)

	case cliparse.DatabaseSQLite:
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
		s = NewSQLStore(conn, db.DialectSQLite)

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if err := s.Ping(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return s, nil
}
