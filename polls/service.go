// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/recent-polls/models"
)

// DefaultListLimit is the number of questions shown by ListRecent.
const DefaultListLimit = 5

// Repository is the storage the service needs.
// Implementations must make IncrementChoice a single atomic update.
type Repository interface {
	// FindVisibleQuestion returns ErrNotFound when the question is missing
	// or its pub_date is after now.
	FindVisibleQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error)
	ListRecentQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error)
	// IncrementChoice adds one vote and reports whether a row of that
	// question was updated.
	IncrementChoice(ctx context.Context, questionID, choiceID int64) (bool, error)
	SumVotes(ctx context.Context, questionID int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListRecent returns up to limit visible questions, newest first.
func (s *Service) ListRecent(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	questions, err := s.repo.ListRecentQuestions(ctx, now, limit)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

// GetVisible returns the question if it exists and is published at now.
func (s *Service) GetVisible(ctx context.Context, questionID int64, now time.Time) (models.Question, error) {
	if questionID <= 0 {
		return models.Question{}, ErrNotFound
	}
	q, err := s.repo.FindVisibleQuestion(ctx, questionID, now)
	if err != nil {
		return models.Question{}, err
	}
	if !q.IsVisible(now) {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

// Detail returns a visible question together with its choices.
func (s *Service) Detail(ctx context.Context, questionID int64, now time.Time) (models.Question, []models.Choice, error) {
	q, err := s.GetVisible(ctx, questionID, now)
	if err != nil {
		return models.Question{}, nil, err
	}
	choices, err := s.repo.ListChoices(ctx, q.ID)
	if err != nil {
		return models.Question{}, nil, err
	}
	return q, choices, nil
}

// Vote records one vote for rawChoice on the question and returns the
// question ID. rawChoice is untrusted input.
func (s *Service) Vote(ctx context.Context, questionID int64, rawChoice string, now time.Time) (int64, error) {
	q, err := s.GetVisible(ctx, questionID, now)
	if err != nil {
		return 0, err
	}

	choiceID, ok := parseChoiceID(rawChoice)
	if !ok {
		return 0, &ValidationError{Message: models.MessageNoChoiceGiven}
	}

	updated, err := s.repo.IncrementChoice(ctx, q.ID, choiceID)
	if err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}
	if !updated {
		// unknown choice, or one that belongs to another question
		return 0, &ValidationError{Message: models.MessageNoChoiceGiven}
	}

	return q.ID, nil
}

// Totals returns the sum of votes over every choice of q.
func (s *Service) Totals(ctx context.Context, q models.Question) (int64, error) {
	return s.repo.SumVotes(ctx, q.ID)
}

// Results returns a visible question, its choices, and the total of the
// listed counts.
func (s *Service) Results(ctx context.Context, questionID int64, now time.Time) (models.Question, []models.Choice, int64, error) {
	q, choices, err := s.Detail(ctx, questionID, now)
	if err != nil {
		return models.Question{}, nil, 0, err
	}

	// Summed from the same rows so the total always matches what is shown.
	var total int64
	for _, c := range choices {
		total += c.Votes
	}
	return q, choices, total, nil
}

func parseChoiceID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
