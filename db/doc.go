// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Two DDL dialects are carried (sqlite and postgres); they differ only in the
auto-increment primary key syntax.

# Tables

  - submissions: Contact form entries
  - users: Admin accounts (username + bcrypt hash in the password column)

# Indexes

  - submissions.created_at (dashboard lists newest-first)
  - users.username (unique)
*/
package db
