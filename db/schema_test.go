// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		query   string
		want    string
	}{
		{"postgres single", DialectPostgres, "SELECT * FROM question WHERE id = ?", "SELECT * FROM question WHERE id = $1"},
		{"postgres many", DialectPostgres, "INSERT INTO question VALUES (?, ?, ?, ?)", "INSERT INTO question VALUES ($1, $2, $3, $4)"},
		{"postgres none", DialectPostgres, "SELECT COUNT(*) FROM question", "SELECT COUNT(*) FROM question"},
		{"sqlite untouched", DialectSQLite, "SELECT * FROM question WHERE id = ?", "SELECT * FROM question WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.dialect, tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateSchema(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	ctx := context.Background()

	// Twice to check idempotence
	for i := 0; i < 2; i++ {
		if err := CreateSchema(ctx, conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}

	_, err = conn.Exec(`INSERT INTO question (id, title, body, created_at) VALUES ('a', 'Hi', '', CURRENT_TIMESTAMP)`)
	if err != nil {
		t.Fatalf("Expected valid insert to succeed: %v", err)
	}

	_, err = conn.Exec(`INSERT INTO question (id, title, body, created_at) VALUES ('b', '   ', '', CURRENT_TIMESTAMP)`)
	if err == nil {
		t.Error("Expected blank title to violate CHECK constraint")
	}
}
