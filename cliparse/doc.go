// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: connection string or SQLite file (required)
  - DatabaseType: sqlite, postgres or mongo (default: sqlite)
  - DatabaseName: MongoDB database name (default: awesome_answers)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	--db-name    Database name
	--log-level  Log level
	--log-format Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DATABASE_NAME → --db-name
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format

A .env file in the working directory is loaded before the environment is
read. CLI flags take precedence over environment variables, and environment
variables over .env.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or if the database
type, log level or log format is not one of the listed values.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(cliparse.NewLogger(cfg))

	s, err := store.Open(ctx, cfg)
	// ...
	mux := router.NewRouter(s, renderer)
*/
package cliparse
