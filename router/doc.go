// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the contact backend.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{...})

# Endpoints

Public:

	GET  /health  - Health check
	GET  /        - Static landing page (and assets) from the public dir
	POST /submit  - Contact form submission, JSON response
	GET  /login   - Login form
	POST /login   - Credential check

Protected (live session required, otherwise 302 to /login):

	GET  /logout        - Destroy session
	GET  /dashboard     - Submission list, newest-first
	POST /delete/{id}   - Delete one submission

# Dependency Injection

The router receives every service object in a Deps struct - submission and
account stores, the session manager, the notifier, and the renderer - and
hands them to the handlers. Protected routes are wrapped with the
RequireAuth guard at registration time.
*/
package router
