// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/recent-polls/cliparse"
	"github.com/danielhkuo/recent-polls/db"
	"github.com/danielhkuo/recent-polls/middleware"
	"github.com/danielhkuo/recent-polls/models"
	"github.com/danielhkuo/recent-polls/polls"
)

type QuestionHandler struct {
	svc *polls.Service
	cfg cliparse.Config
	now func() time.Time
}

func NewQuestionHandler(conn *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{
		svc: polls.NewService(db.NewStore(conn)),
		cfg: cfg,
		now: time.Now,
	}
}

// List handles GET /questions
// Returns the latest published questions, newest first
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListRecent(r.Context(), h.now(), polls.DefaultListLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response := models.QuestionListResponse{Questions: questions}
	if len(questions) == 0 {
		response.Message = models.MessageNoPolls
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// Detail handles GET /questions/{id}
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	q, choices, err := h.svc.Detail(r.Context(), questionID, h.now())
	if err != nil {
		writeServiceError(w, err, "failed to load question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		Question: q,
		Choices:  choices,
	})
}

// Results handles GET /questions/{id}/results
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	q, choices, total, err := h.svc.Results(r.Context(), questionID, h.now())
	if err != nil {
		writeServiceError(w, err, "failed to load results")
		return
	}

	results := make([]models.ChoiceResult, 0, len(choices))
	for _, c := range choices {
		results = append(results, models.ChoiceResult{
			ID:         c.ID,
			Text:       c.Text,
			Votes:      c.Votes,
			VotesLabel: english.Plural(int(c.Votes), "vote", ""),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   q,
		Choices:    results,
		TotalVotes: total,
	})
}

// Vote handles POST /questions/{id}/vote
// Accepts the choice as a form field or a JSON body and redirects to the
// results on success
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var rawChoice string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req models.VoteRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		rawChoice = req.ChoiceValue()
	} else {
		rawChoice = r.PostFormValue("choice")
	}

	now := h.now()
	votedID, err := h.svc.Vote(r.Context(), questionID, rawChoice, now)

	var verr *polls.ValidationError
	if errors.As(err, &verr) {
		h.redisplayDetail(w, r, questionID, now, verr.Message)
		return
	}
	if err != nil {
		writeServiceError(w, err, "failed to record vote")
		return
	}

	slog.Info("vote recorded", "question_id", votedID, "choice", rawChoice)

	http.Redirect(w, r, resultsPath(votedID), http.StatusSeeOther)
}

// redisplayDetail answers a rejected vote with the detail payload and the
// validation message
func (h *QuestionHandler) redisplayDetail(w http.ResponseWriter, r *http.Request, questionID int64, now time.Time, message string) {
	q, choices, err := h.svc.Detail(r.Context(), questionID, now)
	if err != nil {
		writeServiceError(w, err, "failed to load question")
		return
	}

	middleware.JSONResponse(w, http.StatusBadRequest, models.QuestionDetailResponse{
		Question:     q,
		Choices:      choices,
		ErrorMessage: message,
	})
}

func writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, polls.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	slog.Error(logMsg, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// pathQuestionID reads {id}; anything but a positive integer is treated
// as a missing question
func pathQuestionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func resultsPath(questionID int64) string {
	return "/questions/" + strconv.FormatInt(questionID, 10) + "/results"
}
