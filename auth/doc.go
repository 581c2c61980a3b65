// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session cookie signing.

# Passwords

Admin passwords are stored as salted bcrypt hashes (cost 10):

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(hash, plaintext)

CheckPassword never distinguishes "unknown user" from "wrong password" on its
own; callers are expected to surface one generic failure for both.

# Session Cookies

Session IDs are opaque and server-held. The cookie carries the ID plus an
HMAC-SHA256 signature keyed by the session secret:

	value := auth.EncodeCookie(sessionID, secret)
	sessionID, err := auth.DecodeCookie(value, secret)

A client cannot forge a valid cookie without the secret, and signature
comparison uses hmac.Equal, so it does not leak timing information.
*/
package auth
