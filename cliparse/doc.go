// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

Flags are registered on a cobra/pflag flag set, then Resolve fills in
whatever was not given on the command line:

	cliparse.RegisterFlags(cmd.PersistentFlags(), &cfg)
	// ... after parsing
	cfg, err := cliparse.Resolve(cfg)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (default polls.db for sqlite)
  - DatabaseType: sqlite, postgres or memory (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC
  - IndexLimit: Questions shown on the index page (default: 5, negative for all)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	--index-limit        Index page size
	--admin-salt         Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	INDEX_LIMIT    → --index-limit
	ADMIN_KEY_SALT → --admin-salt

A .env file in the working directory is loaded first; it never overrides
variables that are already set. CLI flags take precedence over both.

# Validation

Resolve returns an error for malformed numbers, an unknown database type,
or a postgres database without a URL. Commands that issue or check admin
keys also call RequireSecrets.
*/
package cliparse
