// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSecret: Secret for session cookie HMAC (required)
  - AdminUser, AdminPass: Bootstrap admin credentials (required)
  - Mail: SMTP notifier settings (optional as a group)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--session-secret Session cookie secret
	--admin-user    Bootstrap admin username
	--admin-pass    Bootstrap admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret
	ADMIN_USER     → --admin-user
	ADMIN_PASS     → --admin-pass

Mail settings are environment-only:

	EMAIL_HOST, EMAIL_PORT (default 587), EMAIL_USER, EMAIL_PASS,
	EMAIL_FROM, EMAIL_TO

An unset EMAIL_HOST disables the notifier. CLI flags take precedence over
environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SESSION_SECRET, ADMIN_USER, ADMIN_PASS must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
  - EMAIL_FROM and EMAIL_TO must be set when EMAIL_HOST is set
*/
package cliparse
