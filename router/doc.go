// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health                  - Liveness check
	GET  /                        - API banner
	GET  /questions               - Latest published questions
	GET  /questions/{id}          - Question and choices
	GET  /questions/{id}/results  - Vote counts and total
	POST /questions/{id}/vote     - Cast a vote

Question routes are wrapped with middleware.WithLogging. Unknown paths
answer 404 and known paths with the wrong method answer 405.
*/
package router
