// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides database-backed stores for submissions and accounts.

# Submission Store

	subs := store.NewSubmissionStore(db)
	sub, err := subs.Insert(name, email, message)
	all, err := subs.List()   // newest-first
	err = subs.Delete(id)     // no-op for missing ids

Submissions are immutable once inserted; the only mutation is deletion by an
authenticated admin.

# Account Store

	accts := store.NewAccountStore(db)
	acct, err := accts.FindByUsername(username)  // ErrAccountNotFound when absent
	acct, err := accts.Create(username, passwordHash)

# Admin Bootstrap

EnsureAdmin runs once at startup, before the router accepts traffic:

	if err := accts.EnsureAdmin(cfg.AdminUser, cfg.AdminPass); err != nil {
		// fatal
	}

It looks up the configured username and, when absent, hashes the configured
password with bcrypt and inserts the account. Lookup-then-insert makes it
idempotent across restarts.

# Placeholders

Queries use $1-style placeholders, which both lib/pq and sqlite accept, so
the same store code runs against either backend.
*/
package store
