// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type seedQuestion struct {
	text    string
	age     time.Duration // negative ages are scheduled in the future
	choices []string
}

var demoQuestions = []seedQuestion{
	{"What's new?", 2 * time.Hour, []string{"Not much", "The sky", "Just hacking again"}},
	{"Tabs or spaces?", 72 * time.Hour, []string{"Tabs", "Spaces"}},
	{"Best time for the team lunch?", 30 * 24 * time.Hour, []string{"11:30", "12:00", "12:30"}},
	{"Which talk should we record next?", -24 * time.Hour, []string{"Profiling", "Generics"}},
}

// Seed inserts demo questions when the store holds none.
// It returns the number of questions inserted.
func Seed(ctx context.Context, store *Store, now time.Time) (int, error) {
	n, err := store.CountQuestions(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("seed skipped, questions already present", "count", n)
		return 0, nil
	}

	for _, sq := range demoQuestions {
		q, err := store.CreateQuestion(ctx, sq.text, now.Add(-sq.age))
		if err != nil {
			return 0, fmt.Errorf("failed to seed question %q: %w", sq.text, err)
		}
		for _, text := range sq.choices {
			if _, err := store.CreateChoice(ctx, q.ID, text, 0); err != nil {
				return 0, fmt.Errorf("failed to seed choice %q: %w", text, err)
			}
		}
	}

	slog.Info("seeded demo questions", "count", len(demoQuestions))
	return len(demoQuestions), nil
}
