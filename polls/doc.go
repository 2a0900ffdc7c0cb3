// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the question visibility, voting, and results rules.

# Visibility

A question is visible once its pub_date is at or before now. Every read
path goes through GetVisible, so unpublished questions surface as
ErrNotFound exactly like missing ones:

	q, err := svc.GetVisible(ctx, id, time.Now())
	if errors.Is(err, polls.ErrNotFound) { ... }

ListRecent returns at most DefaultListLimit visible questions ordered by
pub_date, newest first, with ties going to the later insert.

# Voting

Vote parses the untrusted choice value and issues one atomic increment
scoped to the question. A missing, malformed, unknown or foreign choice
yields a *ValidationError and changes nothing. Storage failures are
returned wrapped.

# Results

Results returns the per-choice counts as stored and their sum. Totals
asks the store for the sum directly.
*/
package polls
