// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/awesome-answers/db"
	"github.com/danielhkuo/awesome-answers/models"
	"github.com/danielhkuo/awesome-answers/render"
	"github.com/danielhkuo/awesome-answers/store"
)

// MissingID is well-formed but never assigned
const MissingID = "000000000000000000000000"

// SetupTestStore creates a fresh in-memory SQLite store with the full schema
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	s := store.NewSQLStore(conn, db.DialectSQLite)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { s.Close() })
	return s
}

// SetupTestRenderer returns a renderer over the embedded templates
func SetupTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	r, err := render.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return r
}

// CreateTestQuestion stores a question directly and returns its ID
func CreateTestQuestion(t *testing.T, s store.QuestionStore, title, body string) string {
	t.Helper()

	q, err := s.Create(context.Background(), models.Question{Title: title, Body: body})
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q.ID
}

// CountQuestions returns the number of stored questions
func CountQuestions(t *testing.T, s store.QuestionStore) int64 {
	t.Helper()

	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	return n
}

// MakeFormRequest creates a url-encoded form submission
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains substr
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), substr) {
		t.Errorf("Expected body to contain %q. Body: %s", substr, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain substr
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if strings.Contains(w.Body.String(), substr) {
		t.Errorf("Expected body not to contain %q. Body: %s", substr, w.Body.String())
	}
}
