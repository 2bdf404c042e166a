// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the polls app.

# Handler Types

Each handler is a struct holding its store, clock and config:

  - QuestionHandler: HTML pages (index, detail, vote, results)
  - APIHandler: JSON endpoints for listing, creating and inspecting questions

Handlers are created via constructor functions:

	questions := handlers.NewQuestionHandler(s, renderer, clock.NewSystem(), cfg)
	api := handlers.NewAPIHandler(s, clock.NewSystem(), cfg)

# Pages

	GET  /                         → Index (latest published questions)
	GET  /questions/{id}           → Detail (vote form)
	POST /questions/{id}/vote      → Vote (303 to results)
	GET  /questions/{id}/results   → Results

A question whose pub_date is still in the future answers 404 on every page,
exactly like an unknown id.

# API

	GET  /api/questions                → ListQuestions
	POST /api/questions                → CreateQuestion (returns admin_key)
	GET  /api/questions/{id}           → GetQuestion
	POST /api/questions/{id}/choices   → AddChoice

Adding choices and reading unpublished questions require the X-Admin-Key
header.
*/
package handlers
