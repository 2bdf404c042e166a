// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/models"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func render(t *testing.T, name string, data any) string {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		t.Fatalf("Render(%s) failed: %v", name, err)
	}
	return buf.String()
}

func TestRenderIndex_Empty(t *testing.T) {
	body := render(t, PageIndex, IndexPage{LatestQuestionList: []models.Question{}, Now: now})

	if !strings.Contains(body, "No polls are available.") {
		t.Errorf("Expected empty message, got: %s", body)
	}
	if strings.Contains(body, "<ul>") {
		t.Errorf("Expected no list for empty index, got: %s", body)
	}
}

func TestRenderIndex_Questions(t *testing.T) {
	body := render(t, PageIndex, IndexPage{
		LatestQuestionList: []models.Question{
			{ID: "q1", QuestionText: "What's up?", PubDate: now.Add(-time.Hour)},
			{ID: "q2", QuestionText: "Old question", PubDate: now.AddDate(0, 0, -30)},
		},
		Now: now,
	})

	for _, want := range []string{
		`<a href="/questions/q1">What&#39;s up?</a>`,
		`<a href="/questions/q2">Old question</a>`,
		"published 1 hour ago",
		"published 1 month ago",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q, got: %s", want, body)
		}
	}
	if strings.Count(body, "<strong>new</strong>") != 1 {
		t.Errorf("Expected exactly one question marked new, got: %s", body)
	}
	if strings.Contains(body, "No polls are available") {
		t.Error("Did not expect empty message when questions exist")
	}
}

func TestRenderIndex_EscapesText(t *testing.T) {
	body := render(t, PageIndex, IndexPage{
		LatestQuestionList: []models.Question{
			{ID: "q1", QuestionText: "<script>alert(1)</script>", PubDate: now},
		},
		Now: now,
	})

	if strings.Contains(body, "<script>") {
		t.Errorf("Expected question text to be escaped, got: %s", body)
	}
}

func TestRenderDetail(t *testing.T) {
	page := DetailPage{
		Question: models.Question{ID: "q1", QuestionText: "Favourite colour?"},
		Choices: []models.Choice{
			{ID: "c1", QuestionID: "q1", ChoiceText: "Red"},
			{ID: "c2", QuestionID: "q1", ChoiceText: "Blue"},
		},
	}

	body := render(t, PageDetail, page)
	for _, want := range []string{
		"<title>Favourite colour?</title>",
		`action="/questions/q1/vote"`,
		`value="c1"`,
		`<label for="choice-c2">Blue</label>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q, got: %s", want, body)
		}
	}

	page.ErrorMessage = "You didn't select a choice."
	body = render(t, PageDetail, page)
	if !strings.Contains(body, "You didn&#39;t select a choice.") {
		t.Errorf("Expected error message, got: %s", body)
	}
}

func TestRenderResults(t *testing.T) {
	body := render(t, PageResults, ResultsPage{
		Question: models.Question{ID: "q1", QuestionText: "Favourite colour?"},
		Choices: []models.Choice{
			{ID: "c1", ChoiceText: "Red", Votes: 1},
			{ID: "c2", ChoiceText: "Blue", Votes: 1234},
			{ID: "c3", ChoiceText: "Green", Votes: 0},
		},
	})

	for _, want := range []string{"Red -- 1 vote<", "Blue -- 1,234 votes", "Green -- 0 votes"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q, got: %s", want, body)
		}
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "missing", nil); err == nil {
		t.Error("Expected error for unknown page")
	}
}
