// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the polls command: a small polls web application that
lists published questions, lets visitors vote on their choices and shows the
results.

# Commands

	polls [serve]                          run the HTTP server
	polls migrate                          create the database schema and exit
	polls question add --text T [--offset D | --pub-date RFC3339] [--choice C ...]
	polls seed FILE.yaml                   load questions from a fixture file

# Configuration

Every setting can be given as a flag, an environment variable or a line in
a .env file in the working directory:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC (serve, question add)
  - DATABASE_TYPE (-t): sqlite (default), postgres or memory
  - DATABASE_URL (-d): Connection string (default: polls.db for sqlite)
  - PORT (-p): Server port (default: 3318)
  - INDEX_LIMIT (--index-limit): Questions on the index page (default: 5)

For example:

	ADMIN_KEY_SALT=dev polls seed testdata/questions.yaml
	ADMIN_KEY_SALT=dev polls serve -p 8080

# Architecture

  - handlers: HTTP request handlers (pages and JSON API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - views: Embedded HTML templates
  - store: Question and choice persistence (SQL and in-memory)
  - db: Connection and schema creation
  - models: Domain and request/response types
  - auth: Admin key generation and validation
  - clock: Injectable time source
  - fixtures: YAML seed files
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
