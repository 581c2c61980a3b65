// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements server-side admin sessions with signed cookies.

# Model

The session record lives in process memory, keyed by a random opaque ID. The
cookie carries only the ID plus an HMAC signature (see the auth package), so
clients cannot mint or alter sessions. Records expire one hour after login.

# Usage

	sessions := session.NewManager(cfg.SessionSecret)

	sessions.Start(w, username)        // on successful login
	sess, ok := sessions.Get(r)        // guard predicate for protected routes
	sessions.Destroy(w, r)             // on logout

Get treats a missing cookie, a forged cookie, an unknown ID, and an expired
record identically - the caller only learns "no session" and redirects to the
login page without distinguishing the cases.

# Expiry

Expired records are rejected (and removed) on read. A periodic Sweep, run
from main on a ticker, removes records nobody reads again.
*/
package session
