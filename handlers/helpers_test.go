// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/recent-polls/testutil"
)

// testEnv pairs a handler with the database behind it
type testEnv struct {
	*QuestionHandler
	testDB *sql.DB
}

func newTestHandler(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	return &testEnv{
		QuestionHandler: NewQuestionHandler(conn, testutil.GetTestConfig()),
		testDB:          conn,
	}
}
