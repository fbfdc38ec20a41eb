// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for Awesome Answers.

# Handler Types

QuestionHandler holds the question store and the view renderer:

	questionHandler := handlers.NewQuestionHandler(s, renderer)

# Submission Flow

A submission moves through these states:

	FormDisplayed → Submitted → Created → Redirected
	                          ↘ Rejected → FormDisplayed (with errors)

	GET  /questions/new  → New    (empty form)
	POST /questions      → Create (303 to /questions/{id}, or 200 form with errors)
	GET  /questions/{id} → Show   (detail, or 404 error page)

Rejected submissions re-render the form with the submitted title and body
filled back in, next to the per-field messages.

# Error Handling

Every store call is checked before a response is written:

  - field errors: form re-rendered with status 200
  - unknown or malformed ID: error page, 404 "Question not found"
  - store failure on lookup: logged, same 404 page
  - store failure on create: logged, error page, 500
*/
package handlers
