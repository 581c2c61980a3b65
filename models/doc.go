// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types for the contact backend.

# Domain Types

  - Submission: one contact-form entry (name, email, message, created_at)
  - Account: one administrator identity (username, bcrypt password hash)

# Response Types

Types for JSON responses:

  - SubmitResponse: success, message
  - ErrorResponse: error, message

The submit endpoint accepts form-encoded or JSON bodies but always answers
with JSON. The admin pages answer with HTML and redirects, so they have no
response types here.

# Constants

	SessionCookie  = "contactdesk_session"
	DefaultSubject = "No Subject"
*/
package models
