// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/testutil"
	"github.com/danielhkuo/polls/views"
)

func newQuestionHandler(t *testing.T, s store.Store) *QuestionHandler {
	t.Helper()

	v, err := views.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return NewQuestionHandler(s, v, clock.NewFixed(testutil.TestNow), testutil.GetTestConfig())
}

// serve routes a request through a mux so PathValue works
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func assertIndexList(t *testing.T, h *QuestionHandler, want ...string) {
	t.Helper()

	page, err := h.IndexContext(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("IndexContext failed: %v", err)
	}
	if len(page.LatestQuestionList) != len(want) {
		t.Fatalf("Expected %d questions in latest_question_list, got %d", len(want), len(page.LatestQuestionList))
	}
	for i, text := range want {
		if page.LatestQuestionList[i].QuestionText != text {
			t.Errorf("latest_question_list[%d]: expected %q, got %q", i, text, page.LatestQuestionList[i].QuestionText)
		}
	}
}

func TestIndex_NoQuestions(t *testing.T) {
	h := newQuestionHandler(t, testutil.SetupTestStore(t))

	w := serve("GET /{$}", h.Index, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "No polls are available")
	assertIndexList(t, h)

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
}

func TestIndex_HidesFutureQuestions(t *testing.T) {
	s := testutil.SetupTestStore(t)
	testutil.CreateTestQuestion(t, s, "Question test", testutil.Days(30))
	h := newQuestionHandler(t, s)

	w := serve("GET /{$}", h.Index, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "No polls are available")
	testutil.AssertNotContains(t, w, "Question test")
	assertIndexList(t, h)
}

func TestIndex_ShowsOnlyPastQuestions(t *testing.T) {
	s := testutil.SetupTestStore(t)
	testutil.CreateTestQuestion(t, s, "Question test future", testutil.Days(30))
	testutil.CreateTestQuestion(t, s, "Question test past", -testutil.Days(30))
	h := newQuestionHandler(t, s)

	w := serve("GET /{$}", h.Index, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Question test past")
	testutil.AssertNotContains(t, w, "Question test future")
	testutil.AssertNotContains(t, w, "No polls are available")
	assertIndexList(t, h, "Question test past")
}

func TestIndex_MostRecentFirstAndLimited(t *testing.T) {
	s := testutil.SetupTestStore(t)
	for i := 7; i >= 1; i-- {
		testutil.CreateTestQuestion(t, s, "Question "+string(rune('0'+i)), -testutil.Days(i))
	}
	h := newQuestionHandler(t, s)

	// Config limit is 5
	assertIndexList(t, h, "Question 1", "Question 2", "Question 3", "Question 4", "Question 5")
}

func TestIndex_MarksRecentQuestions(t *testing.T) {
	s := testutil.SetupTestStore(t)
	testutil.CreateTestQuestion(t, s, "Fresh", -time.Hour)
	testutil.CreateTestQuestion(t, s, "Stale", -testutil.Days(2))
	h := newQuestionHandler(t, s)

	w := serve("GET /{$}", h.Index, httptest.NewRequest("GET", "/", nil))

	testutil.AssertContains(t, w, "published 1 hour ago")
	testutil.AssertContains(t, w, "published 2 days ago")
	testutil.AssertContains(t, w, "<strong>new</strong>")
}

func TestDetail(t *testing.T) {
	s := testutil.SetupTestStore(t)
	past := testutil.CreateTestQuestion(t, s, "Past question", -testutil.Days(5))
	future := testutil.CreateTestQuestion(t, s, "Future question", testutil.Days(5))
	testutil.AddTestChoice(t, s, past.ID, "Yes")
	testutil.AddTestChoice(t, s, past.ID, "No")
	h := newQuestionHandler(t, s)

	t.Run("past question", func(t *testing.T) {
		w := serve("GET /questions/{id}", h.Detail, httptest.NewRequest("GET", "/questions/"+past.ID, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertContains(t, w, "Past question")
		testutil.AssertContains(t, w, ">Yes</label>")
		testutil.AssertContains(t, w, ">No</label>")
	})

	t.Run("future question", func(t *testing.T) {
		w := serve("GET /questions/{id}", h.Detail, httptest.NewRequest("GET", "/questions/"+future.ID, nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertNotContains(t, w, "Future question")
	})

	t.Run("unknown question", func(t *testing.T) {
		w := serve("GET /questions/{id}", h.Detail, httptest.NewRequest("GET", "/questions/missing", nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestVote(t *testing.T) {
	s := testutil.SetupTestStore(t)
	q := testutil.CreateTestQuestion(t, s, "Favourite colour?", -time.Hour)
	other := testutil.CreateTestQuestion(t, s, "Favourite food?", -time.Hour)
	red := testutil.AddTestChoice(t, s, q.ID, "Red")
	blue := testutil.AddTestChoice(t, s, q.ID, "Blue")
	pizza := testutil.AddTestChoice(t, s, other.ID, "Pizza")
	future := testutil.CreateTestQuestion(t, s, "Later", testutil.Days(1))
	later := testutil.AddTestChoice(t, s, future.ID, "Maybe")
	h := newQuestionHandler(t, s)

	vote := func(questionID string, form url.Values) *httptest.ResponseRecorder {
		return serve("POST /questions/{id}/vote", h.Vote, testutil.MakeFormRequest("/questions/"+questionID+"/vote", form))
	}

	t.Run("valid choice", func(t *testing.T) {
		w := vote(q.ID, url.Values{"choice": {red.ID}})

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		if loc := w.Header().Get("Location"); loc != "/questions/"+q.ID+"/results" {
			t.Errorf("Expected redirect to results, got %q", loc)
		}
	})

	t.Run("no choice", func(t *testing.T) {
		w := vote(q.ID, url.Values{})

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertContains(t, w, "You didn&#39;t select a choice.")
		testutil.AssertContains(t, w, "Favourite colour?")
	})

	t.Run("choice of another question", func(t *testing.T) {
		w := vote(q.ID, url.Values{"choice": {pizza.ID}})

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertContains(t, w, "You didn&#39;t select a choice.")
	})

	t.Run("future question", func(t *testing.T) {
		w := vote(future.ID, url.Values{"choice": {later.ID}})

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	choices, err := s.ListChoices(context.Background(), q.ID)
	if err != nil {
		t.Fatal(err)
	}
	votes := map[string]int{}
	for _, c := range choices {
		votes[c.ID] = c.Votes
	}
	if votes[red.ID] != 1 || votes[blue.ID] != 0 {
		t.Errorf("Expected exactly one vote for Red, got %v", votes)
	}

	futureChoices, err := s.ListChoices(context.Background(), future.ID)
	if err != nil {
		t.Fatal(err)
	}
	if futureChoices[0].Votes != 0 {
		t.Error("Expected no votes recorded on an unpublished question")
	}
}

func TestResults(t *testing.T) {
	s := testutil.SetupTestStore(t)
	q := testutil.CreateTestQuestion(t, s, "Favourite colour?", -time.Hour)
	red := testutil.AddTestChoice(t, s, q.ID, "Red")
	testutil.AddTestChoice(t, s, q.ID, "Blue")
	future := testutil.CreateTestQuestion(t, s, "Later", testutil.Days(1))
	for i := 0; i < 2; i++ {
		if err := s.Vote(context.Background(), q.ID, red.ID); err != nil {
			t.Fatal(err)
		}
	}
	h := newQuestionHandler(t, s)

	w := serve("GET /questions/{id}/results", h.Results, httptest.NewRequest("GET", "/questions/"+q.ID+"/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Red -- 2 votes")
	testutil.AssertContains(t, w, "Blue -- 0 votes")

	w = serve("GET /questions/{id}/results", h.Results, httptest.NewRequest("GET", "/questions/"+future.ID+"/results", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

// failingStore fails every call
type failingStore struct {
	store.Store
}

var errBoom = errors.New("boom")

func (failingStore) FindVisible(context.Context, time.Time, int) ([]models.Question, error) {
	return nil, errBoom
}

func (failingStore) GetQuestion(context.Context, string) (models.Question, error) {
	return models.Question{}, errBoom
}

func TestStoreErrors(t *testing.T) {
	h := newQuestionHandler(t, failingStore{})

	w := serve("GET /{$}", h.Index, httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	w = serve("GET /questions/{id}", h.Detail, httptest.NewRequest("GET", "/questions/x", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
