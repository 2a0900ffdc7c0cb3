// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/recent-polls/models"
	"github.com/danielhkuo/recent-polls/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "recent-polls API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/questions"},
		{"GET", "/questions/1"},
		{"GET", "/questions/1/results"},
		{"POST", "/questions/1/vote"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 404 from the handler is fine; 405 means no route
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/questions"},
		{"DELETE", "/questions/1"},
		{"GET", "/questions/1/vote"},
		{"PUT", "/questions/1/results"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/polls/1", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

// TestVoteFlow walks list → detail → vote → results through the router
func TestVoteFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	q := testutil.CreateQuestion(t, db, "What's new?", -1)
	choice := testutil.CreateChoice(t, db, q, "Not much", 0)
	testutil.CreateChoice(t, db, q, "The sky", 0)
	testutil.CreateQuestion(t, db, "Not yet.", 3)

	base := "/questions/" + strconv.FormatInt(q.ID, 10)

	// List
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/questions", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.QuestionListResponse
	testutil.AssertJSON(t, w, &list)
	if len(list.Questions) != 1 || list.Questions[0].ID != q.ID {
		t.Fatalf("Expected only the published question, got %+v", list.Questions)
	}

	// Detail
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", base, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID on logged routes")
	}

	// Vote
	form := url.Values{"choice": {strconv.FormatInt(choice.ID, 10)}}
	req := httptest.NewRequest("POST", base+"/vote", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	location := w.Header().Get("Location")
	if location != base+"/results" {
		t.Fatalf("Expected redirect to %s/results, got '%s'", base, location)
	}

	// Results
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", location, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 1 {
		t.Errorf("Expected total 1, got %d", results.TotalVotes)
	}
	if results.Choices[0].VotesLabel != "1 vote" || results.Choices[1].VotesLabel != "0 votes" {
		t.Errorf("Unexpected labels: %+v", results.Choices)
	}
}
