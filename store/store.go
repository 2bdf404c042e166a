// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polls/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuestion = errors.New("question_text is required")
	ErrInvalidChoice   = errors.New("choice_text is required")
)

// Store is the persistent collection of questions and their choices.
type Store interface {
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)

	// FindVisible returns questions published at or before now, most recent
	// first. A limit <= 0 returns all of them.
	FindVisible(ctx context.Context, now time.Time, limit int) ([]models.Question, error)

	AddChoice(ctx context.Context, c models.Choice) (models.Choice, error)
	ListChoices(ctx context.Context, questionID string) ([]models.Choice, error)

	// Vote adds one vote to choiceID, which must belong to questionID.
	Vote(ctx context.Context, questionID, choiceID string) error
}

// prepareQuestion validates q and fills in the fields a store owns.
func prepareQuestion(q models.Question) (models.Question, error) {
	q.QuestionText = strings.TrimSpace(q.QuestionText)
	if q.QuestionText == "" {
		return models.Question{}, ErrInvalidQuestion
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.PubDate = normalizeTime(q.PubDate)
	return q, nil
}

func prepareChoice(c models.Choice) (models.Choice, error) {
	c.ChoiceText = strings.TrimSpace(c.ChoiceText)
	if c.ChoiceText == "" {
		return models.Choice{}, ErrInvalidChoice
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Votes = 0
	return c, nil
}

// normalizeTime stores instants in UTC at microsecond precision, the
// finest resolution Postgres keeps.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
