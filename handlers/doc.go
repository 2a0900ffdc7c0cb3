// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls API.

# Handler Types

QuestionHandler serves every endpoint. It is created with the database
connection and config:

	questionHandler := handlers.NewQuestionHandler(db, cfg)

Handlers pass the current time into the polls service on every request,
so unpublished questions disappear from all read paths.

# Endpoints

	GET  /questions               → List (latest 5 published questions)
	GET  /questions/{id}          → Detail (question and choices)
	GET  /questions/{id}/results  → Results (counts, labels, total)
	POST /questions/{id}/vote     → Vote

# Voting

The choice is read from a "choice" form field, or from a JSON body when
Content-Type is application/json:

	{"choice": 3}

On success the response is 303 See Other to the results path. A missing,
malformed or foreign choice answers 400 with the detail payload and an
error_message, and records nothing.

# Errors

  - 404: question missing, unpublished, or id not a positive integer
  - 400: invalid JSON or rejected vote
  - 500: storage failure (logged)
*/
package handlers
