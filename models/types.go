// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// RecentWindow is how far back a question still counts as recently published.
const RecentWindow = 24 * time.Hour

// Messages shown to clients
const (
	MessageNoPolls       = "No polls are available."
	MessageNoChoiceGiven = "You didn't select a choice."
)

// Domain types

type Question struct {
	ID      int64     `json:"id"`
	Text    string    `json:"question_text"`
	PubDate time.Time `json:"pub_date"`
}

// IsVisible reports whether the question may be listed or opened at now.
func (q Question) IsVisible(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether PubDate falls within [now-24h, now].
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

// Request types

// VoteRequest is the JSON form of a vote submission.
// Choice is kept raw so that numbers and numeric strings are both accepted.
type VoteRequest struct {
	Choice json.RawMessage `json:"choice"`
}

// ChoiceValue returns the submitted choice as text, or "" when absent.
func (v VoteRequest) ChoiceValue() string {
	raw := strings.TrimSpace(string(v.Choice))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Choice, &s); err == nil {
		return s
	}
	return raw
}

// Response types

type QuestionListResponse struct {
	Questions []Question `json:"latest_question_list"`
	Message   string     `json:"message,omitempty"`
}

type QuestionDetailResponse struct {
	Question     Question `json:"question"`
	Choices      []Choice `json:"choices"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

type ChoiceResult struct {
	ID         int64  `json:"id"`
	Text       string `json:"choice_text"`
	Votes      int64  `json:"votes"`
	VotesLabel string `json:"votes_label"`
}

type ResultsResponse struct {
	Question   Question       `json:"question"`
	Choices    []ChoiceResult `json:"choices"`
	TotalVotes int64          `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
