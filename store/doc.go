// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists questions behind the QuestionStore interface.

# Backends

  - MongoStore: MongoDB document store (DATABASE_TYPE=mongo)
  - SQLStore: PostgreSQL via lib/pq (DATABASE_TYPE=postgres)
  - SQLStore: SQLite via modernc.org/sqlite (DATABASE_TYPE=sqlite)

Open picks the backend from configuration:

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

# IDs

All backends assign 24-character hex ObjectIDs (NewID). FindByID returns
ErrNotFound for malformed IDs as well as for missing records.

# Errors

Writes rejected by the backend's own rules (the SQL CHECK constraint or the
Mongo $jsonSchema validator) come back as *ValidationError with the same
FieldErrors shape the application validator produces, so callers never see
driver-specific error types:

	var verr *store.ValidationError
	if errors.As(err, &verr) {
		// verr.Fields["title"] == "required"
	}
*/
package store
