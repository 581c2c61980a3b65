// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the contactdesk server.

Contactdesk is a small website backend: it accepts public contact-form
submissions, stores them, emails a notification for each one, and serves a
password-protected dashboard where an administrator can review and delete
them.

# Starting the Server

The server reads configuration from environment variables (a local .env file
is loaded when present) or CLI flags:

	SESSION_SECRET=... ADMIN_USER=admin ADMIN_PASS=... go run .

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for session cookie HMAC
  - ADMIN_USER (--admin-user): Bootstrap admin username
  - ADMIN_PASS (--admin-pass): Bootstrap admin password

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite file path (default: ./database.sqlite) or
    PostgreSQL connection string
  - EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS, EMAIL_FROM, EMAIL_TO:
    SMTP notifier; unset EMAIL_HOST disables outbound mail

# Startup Sequence

 1. Parse config; missing secrets are fatal.
 2. Open the database and create the schema (idempotent).
 3. Bootstrap the admin account if the configured username is absent
    (bcrypt cost 10); failure here aborts startup.
 4. Build the mailer, session manager, renderer, and router, then listen.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submit, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, session guard, JSON helpers
  - models: Domain and response types
  - auth: Password hashing and cookie signing
  - session: Server-side session store
  - store: Submission and account stores
  - mailer: Best-effort SMTP notifications
  - views: Login and dashboard templates
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
