// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

  - Question: question text and publication timestamp
  - Choice: selectable answer with a vote counter

A question is visible once its pub_date is at or before the current time.
Visibility and recency take the current time as a parameter:

	q.IsVisible(now)
	q.WasPublishedRecently(now) // now-24h <= pub_date <= now

# Request Types

  - VoteRequest: choice (number or numeric string)

Votes may also be submitted as a form field named "choice".

# Response Types

  - QuestionListResponse: latest_question_list, message
  - QuestionDetailResponse: question, choices, error_message
  - ResultsResponse: question, choices with vote labels, total_votes
  - ErrorResponse: error, message
*/
package models
