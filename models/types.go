package models

import "time"

// Form field names
const (
	FieldTitle = "title"
	FieldBody  = "body"
)

// Rule names reported in FieldErrors
const (
	RuleRequired = "required"
)

// Domain types

type Question struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Request types

// QuestionInput holds the raw form values of a question submission.
type QuestionInput struct {
	Title string `validate:"required"`
	Body  string
}

// FieldErrors maps a form field name to the rule it violated.
type FieldErrors map[string]string

// Has reports whether field has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// View types

type QuestionFormView struct {
	Input  QuestionInput
	Errors FieldErrors
}

type QuestionView struct {
	Question Question
}

type ErrorView struct {
	Status  int
	Title   string
	Message string
}
