// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/recent-polls/models"
	"github.com/danielhkuo/recent-polls/polls"
)

// Store implements polls.Repository over database/sql.
// Queries use $N placeholders, which both supported drivers accept.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ polls.Repository = (*Store)(nil)

// CreateQuestion inserts a question and returns it with its assigned ID.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{Text: text, PubDate: fromMicros(toMicros(pubDate))}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, toMicros(pubDate)).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}
	return q, nil
}

// CreateChoice attaches a choice with an initial vote count to a question.
func (s *Store) CreateChoice(ctx context.Context, questionID int64, text string, votes int64) (models.Choice, error) {
	if votes < 0 {
		return models.Choice{}, fmt.Errorf("votes must be non-negative, got %d", votes)
	}
	c := models.Choice{QuestionID: questionID, Text: text, Votes: votes}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, $3)
		RETURNING id
	`, questionID, text, votes).Scan(&c.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}
	return c, nil
}

// CountQuestions returns the number of stored questions, published or not.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func (s *Store) FindVisibleQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	var q models.Question
	var pubDate int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, toMicros(now)).Scan(&q.ID, &q.Text, &pubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, polls.ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	q.PubDate = fromMicros(pubDate)
	return q, nil
}

func (s *Store) ListRecentQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, toMicros(now), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var pubDate int64
		if err := rows.Scan(&q.ID, &q.Text, &pubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = fromMicros(pubDate)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return questions, nil
}

func (s *Store) ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}
	return choices, nil
}

// IncrementChoice adds one vote in a single statement; the database
// serializes concurrent increments. It reports false when no choice with
// that ID belongs to the question.
func (s *Store) IncrementChoice(ctx context.Context, questionID, choiceID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to increment choice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read increment result: %w", err)
	}
	return n == 1, nil
}

func (s *Store) SumVotes(ctx context.Context, questionID int64) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(votes), 0)
		FROM choice
		WHERE question_id = $1
	`, questionID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum votes: %w", err)
	}
	return total, nil
}

func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}
