// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the contact backend.

# Submit Handler

POST /submit accepts the public contact form (urlencoded or JSON). Name,
email, and message are required; the optional subject only feeds the mail
subject line. On success the submission is stored and a notification email is
dispatched on a goroutine with a bounded context - the 200 response never
waits for the mail result, and mail failures are only logged.

# Admin Handler

The login/logout/dashboard/delete handlers. Credential failures re-render the
login form with one generic message for unknown users and wrong passwords
alike. Protected handlers are wrapped with middleware.RequireAuth at route
registration; Dashboard additionally reads the session for the username shown
on the page.

# Handler Initialization

Handlers receive their collaborators explicitly:

	submitHandler := handlers.NewSubmitHandler(subs, notifier)
	adminHandler := handlers.NewAdminHandler(subs, accts, sessions, renderer)

Nothing is held in package-level state.
*/
package handlers
