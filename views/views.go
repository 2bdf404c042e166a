// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the HTML pages of the polls site.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageIndex   = "index"
	PageDetail  = "detail"
	PageResults = "results"
)

// IndexPage is the context of the index page.
type IndexPage struct {
	LatestQuestionList []models.Question
	Now                time.Time
}

// DetailPage is the context of a question page with its vote form.
type DetailPage struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

// ResultsPage is the context of a question's results.
type ResultsPage struct {
	Question models.Question
	Choices  []models.Choice
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"ago": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"votes": func(n int) string {
		if n == 1 {
			return "1 vote"
		}
		return humanize.Comma(int64(n)) + " votes"
	},
	"recent": func(q models.Question, now time.Time) bool {
		return q.WasPublishedRecently(now)
	},
}

// New parses the embedded templates. Each page is layout.html plus its own file.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PageDetail, PageResults} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes the named page into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
