// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielhkuo/awesome-answers/models"
)

var (
	ErrNotFound = errors.New("question not found")
)

// QuestionStore persists questions. Implementations must be safe for
// concurrent use by multiple requests.
type QuestionStore interface {
	// Create assigns an ID and creation time and writes q.
	// Returns a *ValidationError if the backend rejects the document.
	Create(ctx context.Context, q models.Question) (models.Question, error)
	// FindByID returns ErrNotFound for unknown and malformed IDs alike.
	FindByID(ctx context.Context, id string) (models.Question, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Close() error
}

// ValidationError is returned when the backend refuses a write because a
// field rule was violated.
type ValidationError struct {
	Fields models.FieldErrors
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// titleRequired is the only rule the backends enforce
func titleRequired(err error) *ValidationError {
	return &ValidationError{
		Fields: models.FieldErrors{models.FieldTitle: models.RuleRequired},
		Err:    err,
	}
}

// NewID returns a fresh 24-character hex ObjectID.
// Every backend uses this format so URLs look the same regardless of store.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID reports whether id is a well-formed ObjectID
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
