// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/recent-polls/testutil"
)

// TestConcurrentVotesSameChoice verifies that simultaneous votes on one
// choice are all counted
func TestConcurrentVotesSameChoice(t *testing.T) {
	h := newTestHandler(t)

	q := testutil.CreateQuestion(t, h.testDB, "Race question.", -1)
	choice := testutil.CreateChoice(t, h.testDB, q, "contested", 3)

	numVoters := 40

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			h.Vote(w, voteForm(q, url.Values{"choice": {strconv.FormatInt(choice.ID, 10)}}))

			if w.Code == http.StatusSeeOther {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	if got := testutil.ChoiceVotes(t, h.testDB, choice.ID); got != int64(3+numVoters) {
		t.Errorf("Expected %d votes (no lost updates), got %d", 3+numVoters, got)
	}
}

// TestConcurrentVotesAcrossQuestions verifies that votes on unrelated
// questions don't interfere with each other
func TestConcurrentVotesAcrossQuestions(t *testing.T) {
	h := newTestHandler(t)

	q1 := testutil.CreateQuestion(t, h.testDB, "First.", -1)
	q2 := testutil.CreateQuestion(t, h.testDB, "Second.", -2)
	c1 := testutil.CreateChoice(t, h.testDB, q1, "one", 0)
	c2 := testutil.CreateChoice(t, h.testDB, q2, "two", 0)

	perQuestion := 15
	var wg sync.WaitGroup

	for i := 0; i < perQuestion; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.Vote(w, voteForm(q1, url.Values{"choice": {strconv.FormatInt(c1.ID, 10)}}))
		}()
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.Vote(w, voteForm(q2, url.Values{"choice": {strconv.FormatInt(c2.ID, 10)}}))
		}()
	}

	wg.Wait()

	if got := testutil.ChoiceVotes(t, h.testDB, c1.ID); got != int64(perQuestion) {
		t.Errorf("Expected %d votes on first question, got %d", perQuestion, got)
	}
	if got := testutil.ChoiceVotes(t, h.testDB, c2.ID); got != int64(perQuestion) {
		t.Errorf("Expected %d votes on second question, got %d", perQuestion, got)
	}
}
