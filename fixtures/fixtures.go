// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package fixtures loads questions and choices from YAML seed files.
//
//	questions:
//	  - text: "What's new?"
//	    offset: -2h          # relative to now, or
//	    pub_date: 2024-06-01T09:00:00Z
//	    choices: [Not much, The sky]
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

type File struct {
	Questions []Question `yaml:"questions"`
}

type Question struct {
	Text    string     `yaml:"text"`
	PubDate *time.Time `yaml:"pub_date"`
	Offset  string     `yaml:"offset"`
	Choices []string   `yaml:"choices"`
}

// Decode reads a fixture file from r.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

// LoadFile reads the fixture file at path.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()
	return Decode(fh)
}

// PublicationTime resolves the question's pub_date against now.
// Without pub_date or offset the question is published at now.
func (q Question) PublicationTime(now time.Time) (time.Time, error) {
	if q.PubDate != nil && q.Offset != "" {
		return time.Time{}, fmt.Errorf("question %q: set pub_date or offset, not both", q.Text)
	}
	if q.PubDate != nil {
		return *q.PubDate, nil
	}
	if q.Offset == "" {
		return now, nil
	}
	d, err := time.ParseDuration(q.Offset)
	if err != nil {
		return time.Time{}, fmt.Errorf("question %q: invalid offset: %w", q.Text, err)
	}
	return now.Add(d), nil
}

// Apply stores every question of f and its choices. It stops at the first
// error; questions already stored stay stored.
func Apply(ctx context.Context, s store.Store, f File, now time.Time) ([]models.Question, error) {
	created := make([]models.Question, 0, len(f.Questions))
	for _, fq := range f.Questions {
		pubDate, err := fq.PublicationTime(now)
		if err != nil {
			return created, err
		}

		q, err := s.CreateQuestion(ctx, models.Question{QuestionText: fq.Text, PubDate: pubDate})
		if err != nil {
			return created, fmt.Errorf("question %q: %w", fq.Text, err)
		}

		for _, text := range fq.Choices {
			if _, err := s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: text}); err != nil {
				return created, fmt.Errorf("question %q choice %q: %w", fq.Text, text, err)
			}
		}
		created = append(created, q)
	}
	return created, nil
}
