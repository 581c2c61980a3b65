// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer sends fire-and-forget email notifications for new submissions.

# Notifier

The submit handler depends on the Notifier interface, not on SMTP:

	type Notifier interface {
		Notify(ctx context.Context, sub models.Submission, subject string) error
	}

SMTPMailer implements it over github.com/wneessen/go-mail. Discard implements
it as a no-op for deployments without an SMTP host (and for tests).

# Delivery Semantics

Notifications are best-effort. The HTTP response to the submitter never waits
for, or reflects, the mail outcome: the handler dispatches Notify on a
goroutine with a bounded context and logs failures. Nothing is queued and
nothing is retried.

# Message Format

Plaintext body with the submission fields:

	Name: A
	Email: a@x.com
	Message: hi

Subject line: "New Contact Form Submission: <subject>", with "No Subject"
substituted when the form did not supply one. The subject field is used only
here - it is never stored.
*/
package mailer
