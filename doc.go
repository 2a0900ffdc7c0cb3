// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the recent-polls API server.

recent-polls lists the latest published questions, shows a question's
choices, records votes and reports results. Questions become visible at
their publication time; until then they are indistinguishable from
questions that don't exist.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Add demo questions to an empty database:

	go run . -seed

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:polls.db)
  - LOG_FORMAT (-log-format): text or json
  - SEED (-seed): load demo data

Values may also come from a .env file (-env-file).

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - polls: Visibility, voting, and results rules
  - models: Domain and request/response types
  - db: Connections, schema, and the SQL store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
