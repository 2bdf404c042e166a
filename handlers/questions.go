// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

// MsgNoChoice is shown when a vote is submitted without a valid choice.
const MsgNoChoice = "You didn't select a choice."

// QuestionHandler serves the HTML pages.
type QuestionHandler struct {
	store store.Store
	views *views.Renderer
	clock clock.Clock
	cfg   cliparse.Config
}

func NewQuestionHandler(s store.Store, v *views.Renderer, c clock.Clock, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{store: s, views: v, clock: c, cfg: cfg}
}

// IndexContext runs the index query: published questions, latest first.
func (h *QuestionHandler) IndexContext(r *http.Request) (views.IndexPage, error) {
	now := h.clock.Now()
	questions, err := h.store.FindVisible(r.Context(), now, h.cfg.IndexLimit)
	if err != nil {
		return views.IndexPage{}, err
	}
	return views.IndexPage{LatestQuestionList: questions, Now: now}, nil
}

// Index handles GET /
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.IndexContext(r)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, views.PageIndex, page)
}

// Detail handles GET /questions/{id}
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	q, ok := h.publishedQuestion(w, r)
	if !ok {
		return
	}

	choices, err := h.store.ListChoices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, views.PageDetail, views.DetailPage{Question: q, Choices: choices})
}

// Vote handles POST /questions/{id}/vote
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.publishedQuestion(w, r)
	if !ok {
		return
	}

	choiceID := r.PostFormValue("choice")
	if choiceID == "" {
		h.redisplayVoteForm(w, r, q)
		return
	}

	err := h.store.Vote(r.Context(), q.ID, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		h.redisplayVoteForm(w, r, q)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "question_id", q.ID, "choice_id", choiceID, "error", err)
		http.Error(w, "Failed to record vote", http.StatusInternalServerError)
		return
	}

	slog.Info("vote recorded",
		"question_id", q.ID,
		"choice_id", choiceID,
		"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
	)

	// Post/Redirect/Get
	http.Redirect(w, r, "/questions/"+q.ID+"/results", http.StatusSeeOther)
}

func (h *QuestionHandler) redisplayVoteForm(w http.ResponseWriter, r *http.Request, q models.Question) {
	choices, err := h.store.ListChoices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusBadRequest, views.PageDetail, views.DetailPage{
		Question:     q,
		Choices:      choices,
		ErrorMessage: MsgNoChoice,
	})
}

// Results handles GET /questions/{id}/results
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	q, ok := h.publishedQuestion(w, r)
	if !ok {
		return
	}

	choices, err := h.store.ListChoices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, views.PageResults, views.ResultsPage{Question: q, Choices: choices})
}

// publishedQuestion loads the {id} question and writes a 404 if it does not
// exist or is not published yet.
func (h *QuestionHandler) publishedQuestion(w http.ResponseWriter, r *http.Request) (models.Question, bool) {
	q, err := h.store.GetQuestion(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Question not found", http.StatusNotFound)
		return models.Question{}, false
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return models.Question{}, false
	}

	if !q.IsPublished(h.clock.Now()) {
		http.Error(w, "Question not found", http.StatusNotFound)
		return models.Question{}, false
	}

	return q, true
}

// render buffers the page so a template error still yields a clean 500
func (h *QuestionHandler) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}
