// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds questions and choices behind the Store interface.

# Implementations

  - SQLStore: database/sql on a schema from package db (SQLite or Postgres)
  - MemoryStore: mutex-guarded slices, for development and tests

# Visible Questions

FindVisible is the query behind the index page:

	questions, err := s.FindVisible(ctx, clock.Now(), 5)

It drops questions whose pub_date is after now and returns the rest most
recent first. The result is always a non-nil slice.

# Errors

  - ErrNotFound: unknown question, or a choice that is not part of the question
  - ErrInvalidQuestion, ErrInvalidChoice: blank text
*/
package store
