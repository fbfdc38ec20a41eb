// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for Awesome Answers.

# Route Registration

NewRouter returns the complete handler, wrapped in panic recovery:

	handler := router.NewRouter(s, renderer)

# Endpoints

Health:

	GET /health

Questions:

	GET  /questions/new  - Creation form
	POST /questions      - Submit a question
	GET  /questions/{id} - Question detail

Root:

	GET / - Redirects to /questions/new

Unmatched GET paths render the HTML error page with 404. Other methods on
known paths get 405 from the mux.
*/
package router
