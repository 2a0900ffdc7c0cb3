// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and storage.

# Connecting

Open selects the driver from the database type:

	conn, err := db.Open(db.TypeSQLite, "file:polls.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite connections get foreign_keys and busy_timeout pragmas unless the
DSN already sets pragmas, and are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question text and pub_date
  - choice: answer text and vote counter

	question 1──* choice

The foreign key uses ON DELETE CASCADE. pub_date is stored as
microseconds since the Unix epoch so ordering is identical on both
engines.

# Store

Store implements polls.Repository. Votes are recorded with one
statement:

	UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2

so concurrent votes are never lost and a choice from another question
matches no row.

Seed loads a few demo questions into an empty store.
*/
package db
