// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID or a fresh
UUID and is echoed back in the X-Request-ID response header.

# Panic Recovery

Render an error page instead of dropping the connection:

	server := http.Server{
		Handler: middleware.Recover(renderer, mux),
	}

# Form Parsing

	fields := middleware.ParseForm(r, "title", "body")

Missing fields and malformed bodies produce empty strings.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
