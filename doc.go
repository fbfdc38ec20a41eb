// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Awesome Answers web server.

Awesome Answers is a small question-and-answer site: visitors submit a
question through an HTML form and are redirected to a page showing it.

# Starting the Server

With a local SQLite file:

	DATABASE_URL=answers.db go run .

With MongoDB:

	go run . -t mongo -d "mongodb://localhost:27017" --db-name awesome_answers

With PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string, or file path for SQLite

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_NAME (--db-name): MongoDB database (default: awesome_answers)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

Settings may also live in a .env file.

# Architecture

  - handlers: HTTP request handlers (question form, submit, detail)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, panic recovery, form parsing
  - questions: Validate-and-create workflow
  - models: Domain, input and view types, validation rules
  - store: Question persistence (MongoDB, PostgreSQL, SQLite)
  - db: SQL schema creation
  - render: HTML templates
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
