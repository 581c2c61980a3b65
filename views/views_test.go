// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/contactdesk/models"
)

func TestLoginRender(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.Login(&buf, ""); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !strings.Contains(buf.String(), `action="/login"`) {
		t.Error("login page missing the login form")
	}
	if strings.Contains(buf.String(), `class="error"`) {
		t.Error("login page shows an error element without an error")
	}

	buf.Reset()
	if err := r.Login(&buf, "Invalid username or password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Invalid username or password") {
		t.Error("login page missing the error message")
	}
}

func TestDashboardRender(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	subs := []models.Submission{
		{ID: 2, Name: "B", Email: "b@x.com", Message: "second", CreatedAt: time.Now()},
		{ID: 1, Name: "A", Email: "a@x.com", Message: "first", CreatedAt: time.Now().Add(-time.Hour)},
	}

	var buf bytes.Buffer
	if err := r.Dashboard(&buf, "admin", subs); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	body := buf.String()
	for _, want := range []string{"admin", "a@x.com", "b@x.com", `action="/delete/1"`, `action="/delete/2"`} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardEscapesSubmitterInput(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	subs := []models.Submission{
		{ID: 1, Name: "<script>alert(1)</script>", Email: "x@x.com", Message: "hi", CreatedAt: time.Now()},
	}

	var buf bytes.Buffer
	if err := r.Dashboard(&buf, "admin", subs); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	// Stored verbatim, escaped on output
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("dashboard rendered submitter input unescaped")
	}
}

func TestDashboardEmpty(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.Dashboard(&buf, "admin", nil); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No submissions yet") {
		t.Error("empty dashboard missing placeholder text")
	}
}
