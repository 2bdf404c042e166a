// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

	mux := router.NewRouter(store, renderer, clock.NewSystem(), cfg)

# Endpoints

Health:

	GET /health

Pages (HTML):

	GET  /                        - Latest published questions
	GET  /questions/{id}          - Question with vote form
	POST /questions/{id}/vote     - Vote (form field "choice")
	GET  /questions/{id}/results  - Vote counts

Questions that are not published yet answer 404 on every page.

JSON API:

	GET  /api/questions               - latest_question_list
	POST /api/questions               - Create question (returns admin_key)
	GET  /api/questions/{id}          - Question and choices
	POST /api/questions/{id}/choices  - Add choice (X-Admin-Key)
*/
package router
