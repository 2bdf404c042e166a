// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/danielhkuo/polls/models"
)

// MemoryStore keeps everything in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu        sync.RWMutex
	questions []models.Question
	choices   []models.Choice
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) CreateQuestion(_ context.Context, q models.Question) (models.Question, error) {
	q, err := prepareQuestion(q)
	if err != nil {
		return models.Question{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findQuestion(q.ID); ok {
		return models.Question{}, fmt.Errorf("insert question: duplicate id %s", q.ID)
	}
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *MemoryStore) GetQuestion(_ context.Context, id string) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.findQuestion(id)
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

func (s *MemoryStore) FindVisible(_ context.Context, now time.Time, limit int) ([]models.Question, error) {
	now = normalizeTime(now)

	s.mu.RLock()
	visible := []models.Question{}
	for _, q := range s.questions {
		if q.IsPublished(now) {
			visible = append(visible, q)
		}
	}
	s.mu.RUnlock()

	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].PubDate.Equal(visible[j].PubDate) {
			return visible[i].PubDate.After(visible[j].PubDate)
		}
		return visible[i].ID < visible[j].ID
	})

	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return visible, nil
}

func (s *MemoryStore) AddChoice(_ context.Context, c models.Choice) (models.Choice, error) {
	c, err := prepareChoice(c)
	if err != nil {
		return models.Choice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findQuestion(c.QuestionID); !ok {
		return models.Choice{}, ErrNotFound
	}
	s.choices = append(s.choices, c)
	return c, nil
}

func (s *MemoryStore) ListChoices(_ context.Context, questionID string) ([]models.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	choices := []models.Choice{}
	for _, c := range s.choices {
		if c.QuestionID == questionID {
			choices = append(choices, c)
		}
	}
	return choices, nil
}

func (s *MemoryStore) Vote(_ context.Context, questionID, choiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.choices {
		if s.choices[i].ID == choiceID && s.choices[i].QuestionID == questionID {
			s.choices[i].Votes++
			return nil
		}
	}
	return ErrNotFound
}

// findQuestion expects s.mu to be held.
func (s *MemoryStore) findQuestion(id string) (models.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
