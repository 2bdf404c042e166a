// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

// SQLStore keeps questions in a SQL database created by db.CreateSchema.
// Queries use $N placeholders, which both supported drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

var _ Store = (*SQLStore)(nil)

func (s *SQLStore) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	q, err := prepareQuestion(q)
	if err != nil {
		return models.Question{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, q.ID, q.QuestionText, q.PubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}

	return q, nil
}

func (s *SQLStore) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	return getQuestion(ctx, s.db, id)
}

func (s *SQLStore) FindVisible(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	query := `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id ASC
	`
	args := []any{normalizeTime(now)}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query visible questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

func (s *SQLStore) AddChoice(ctx context.Context, c models.Choice) (models.Choice, error) {
	c, err := prepareChoice(c)
	if err != nil {
		return models.Choice{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Choice{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getQuestion(ctx, tx, c.QuestionID); err != nil {
		return models.Choice{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, choice_text, votes, position)
		SELECT $1, $2, $3, 0, COALESCE(MAX(position), 0) + 1
		FROM choice
		WHERE question_id = $2
	`, c.ID, c.QuestionID, c.ChoiceText)
	if err != nil {
		return models.Choice{}, fmt.Errorf("insert choice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Choice{}, fmt.Errorf("commit choice: %w", err)
	}

	return c, nil
}

func (s *SQLStore) ListChoices(ctx context.Context, questionID string) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY position
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate choices: %w", err)
	}

	return choices, nil
}

func (s *SQLStore) Vote(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record vote: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getQuestion(ctx context.Context, q queryRower, id string) (models.Question, error) {
	var out models.Question
	err := q.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&out.ID, &out.QuestionText, &out.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("query question: %w", err)
	}

	out.PubDate = out.PubDate.UTC()
	return out, nil
}
