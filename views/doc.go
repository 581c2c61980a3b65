// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the admin HTML pages with html/template.

Two pages exist: the login form (optionally with a generic error line) and
the dashboard (submission table with per-row delete forms). Templates are
compiled once at startup:

	renderer, err := views.New()
	renderer.Login(w, "Invalid username or password")
	renderer.Dashboard(w, username, submissions)

Submission fields come from untrusted callers and are stored verbatim;
html/template escapes them on output.
*/
package views
