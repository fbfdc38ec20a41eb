// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/awesome-answers/db"
	"github.com/danielhkuo/awesome-answers/models"
)

// SQLStore keeps questions in a relational table. It serves both
// PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).
type SQLStore struct {
	db      *sql.DB
	dialect string
}

var _ QuestionStore = (*SQLStore)(nil)

func NewSQLStore(conn *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: conn, dialect: dialect}
}

func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	return db.CreateSchema(ctx, s.db)
}

func (s *SQLStore) Create(ctx context.Context, q models.Question) (models.Question, error) {
	q.ID = NewID()
	q.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO question (id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`), q.ID, q.Title, q.Body, q.CreatedAt)
	if err != nil {
		if isConstraintViolation(err) {
			return models.Question{}, titleRequired(err)
		}
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

func (s *SQLStore) FindByID(ctx context.Context, id string) (models.Question, error) {
	if !ValidID(id) {
		return models.Question{}, ErrNotFound
	}

	var q models.Question
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, title, body, created_at
		FROM question
		WHERE id = ?
	`), id).Scan(&q.ID, &q.Title, &q.Body, &q.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	return q, nil
}

func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM question").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) rebind(query string) string {
	return db.Rebind(s.dialect, query)
}

// isConstraintViolation recognises NOT NULL and CHECK failures from either
// driver. Those are the only constraints guarding question fields.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "check_violation", "not_null_violation":
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// Extended result codes disabled
			return true
		}
	}
	return false
}
