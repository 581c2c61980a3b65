// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/contactdesk/models"
)

func TestComposeSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{"with subject", "Question about pricing", "New Contact Form Submission: Question about pricing"},
		{"empty subject", "", "New Contact Form Submission: No Subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeSubject(tt.subject); got != tt.want {
				t.Errorf("ComposeSubject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeBody(t *testing.T) {
	sub := models.Submission{
		ID:        1,
		Name:      "A",
		Email:     "a@x.com",
		Message:   "hi",
		CreatedAt: time.Now(),
	}

	body := ComposeBody(sub)

	for _, want := range []string{"Name: A", "Email: a@x.com", "Message: hi"} {
		if !strings.Contains(body, want) {
			t.Errorf("ComposeBody() missing %q in %q", want, body)
		}
	}
}
