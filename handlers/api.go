// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

// APIHandler serves the JSON API under /api.
type APIHandler struct {
	store store.Store
	clock clock.Clock
	cfg   cliparse.Config
}

func NewAPIHandler(s store.Store, c clock.Clock, cfg cliparse.Config) *APIHandler {
	return &APIHandler{store: s, clock: c, cfg: cfg}
}

// ListQuestions handles GET /api/questions
func (h *APIHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.FindVisible(r.Context(), h.clock.Now(), h.cfg.IndexLimit)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{
		LatestQuestionList: questions,
	})
}

// CreateQuestion handles POST /api/questions
func (h *APIHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pubDate := h.clock.Now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	q, err := h.store.CreateQuestion(r.Context(), models.Question{
		QuestionText: req.QuestionText,
		PubDate:      pubDate,
	})
	if errors.Is(err, store.ErrInvalidQuestion) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "pub_date", q.PubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: q.ID,
		AdminKey:   auth.GenerateAdminKey(q.ID, h.cfg.AdminKeySalt),
	})
}

// GetQuestion handles GET /api/questions/{id}
// Unpublished questions are only returned with a valid X-Admin-Key.
func (h *APIHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	q, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !q.IsPublished(h.clock.Now()) {
		adminKey := r.Header.Get("X-Admin-Key")
		if err := auth.ValidateAdminKey(q.ID, adminKey, h.cfg.AdminKeySalt); err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
	}

	choices, err := h.store.ListChoices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: q,
		Choices:  choices,
	})
}

// AddChoice handles POST /api/questions/{id}/choices
func (h *APIHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.store.AddChoice(r.Context(), models.Choice{
		QuestionID: questionID,
		ChoiceText: req.ChoiceText,
	})
	switch {
	case errors.Is(err, store.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case err != nil:
		slog.Error("failed to insert choice", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: c.ID,
	})
}
