// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and view types for Awesome Answers.

# Domain Types

  - Question: id, title, body, created_at

IDs are 24-character hex ObjectIDs assigned by the store.

# Request Types

  - QuestionInput: raw title and body from the creation form
  - FieldErrors: field name → violated rule (e.g. "title" → "required")

# Validation

ValidateQuestion is pure and never touches the store:

	if errs := models.ValidateQuestion(in); errs != nil {
		// re-render the form with errs
	}

Values are whitespace-trimmed first, so a blank title is a missing title.

# View Types

Data contexts passed to the renderer:

  - QuestionFormView: submitted input and field errors
  - QuestionView: a stored question
  - ErrorView: status, title, and message for the error page
*/
package models
