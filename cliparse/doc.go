// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (default: file:polls.db for sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogFormat: text or json (default: text)
  - Seed: Load demo questions into an empty database

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-log-format  Log output format
	-seed        Load demo data
	-env-file    Dotenv file to read (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_FORMAT    → -log-format
	SEED          → -seed

CLI flags take precedence over environment variables, and variables
already set in the environment take precedence over the dotenv file. A
missing dotenv file is not an error.

# Validation

ParseFlags returns an error when:

  - PORT is not a number or is out of range
  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - LOG_FORMAT is not text or json
*/
package cliparse
