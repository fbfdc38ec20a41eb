// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQL schema creation for the relational store backends.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on PostgreSQL and SQLite.

# Tables

  - question: id, title, body, created_at

The question_title_required CHECK constraint rejects blank titles, so a
question can never be stored without one even if application validation is
bypassed.

# Placeholders

Queries are written with ? placeholders and passed through Rebind:

	q := db.Rebind(db.DialectPostgres, "SELECT title FROM question WHERE id = ?")
	// SELECT title FROM question WHERE id = $1
*/
package db
