// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the polls app.

# Domain Types

  - Question: question_text and pub_date
  - Choice: choice_text and a vote counter, owned by one question
  - QuestionWithChoices: question plus its choices

# Publication

A question is visible once its pub_date is at or before the current time:

	q.IsPublished(now)

and counts as recently published for one day after that:

	q.WasPublishedRecently(now) // now-24h < pub_date <= now

Both take the current time as an argument so callers decide which clock
to use.

# Request Types

  - CreateQuestionRequest: question_text, optional pub_date
  - AddChoiceRequest: choice_text

# Response Types

  - CreateQuestionResponse: question_id, admin_key
  - AddChoiceResponse: choice_id
  - QuestionListResponse: latest_question_list
  - ErrorResponse: error, message
*/
package models
