// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/contactdesk/auth"
	"github.com/danielhkuo/contactdesk/db"
	"github.com/danielhkuo/contactdesk/models"
)

// TestSecret signs session cookies in tests
const TestSecret = "test-session-secret"

// SetupTestDB creates a fresh sqlite database with the full schema in a
// per-test temp dir
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// InsertSubmission inserts a submission row directly and returns its id
func InsertSubmission(t *testing.T, conn *sql.DB, name, email, message string, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO submissions (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, name, email, message, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test submission: %v", err)
	}

	return id
}

// CreateTestAccount inserts an account with a real bcrypt hash of password
func CreateTestAccount(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`INSERT INTO users (username, password) VALUES ($1, $2)`, username, hash)
	if err != nil {
		t.Fatalf("Failed to insert test account: %v", err)
	}
}

// CountSubmissions returns the number of submission rows
func CountSubmissions(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM submissions`).Scan(&count); err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	return count
}

// CountAccounts returns the number of account rows
func CountAccounts(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM users`).Scan(&count); err != nil {
		t.Fatalf("Failed to count accounts: %v", err)
	}
	return count
}

// MakeFormRequest creates an HTTP test request with an urlencoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeJSONRequest creates an HTTP test request with a JSON body
func MakeJSONRequest(method, path string, body interface{}) *http.Request {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// FakeNotifier records Notify calls for assertions
type FakeNotifier struct {
	mu    sync.Mutex
	calls []NotifyCall
	Err   error
}

type NotifyCall struct {
	Submission models.Submission
	Subject    string
}

func (f *FakeNotifier) Notify(_ context.Context, sub models.Submission, subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, NotifyCall{Submission: sub, Subject: subject})
	return f.Err
}

// Calls returns a copy of the recorded notification attempts
func (f *FakeNotifier) Calls() []NotifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]NotifyCall(nil), f.calls...)
}

// WaitForCalls polls until n notifications were recorded or the deadline
// passes. The submit handler dispatches notifications on a goroutine, so
// tests cannot observe them synchronously.
func (f *FakeNotifier) WaitForCalls(t *testing.T, n int) []NotifyCall {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if calls := f.Calls(); len(calls) >= n {
			return calls
		}
		time.Sleep(5 * time.Millisecond)
	}

	calls := f.Calls()
	t.Fatalf("Expected %d notification attempts, got %d", n, len(calls))
	return calls
}
