// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/contactdesk/models"
	"github.com/danielhkuo/contactdesk/session"
	"github.com/danielhkuo/contactdesk/testutil"
)

func TestRequireAuthRedirectsWithoutSession(t *testing.T) {
	sessions := session.NewManager(testutil.TestSecret)

	var called bool
	handler := RequireAuth(sessions, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/dashboard", nil))

	testutil.AssertRedirect(t, w, "/login")
	if called {
		t.Error("RequireAuth() invoked the handler without a session")
	}
}

func TestRequireAuthPassesWithSession(t *testing.T) {
	sessions := session.NewManager(testutil.TestSecret)

	login := httptest.NewRecorder()
	sessions.Start(login, "admin")
	var cookie *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == models.SessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Start() did not set a cookie")
	}

	var called bool
	handler := RequireAuth(sessions, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler(w, req)

	testutil.AssertStatus(t, w, 200)
	if !called {
		t.Error("RequireAuth() blocked an authenticated request")
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, models.SubmitResponse{Success: true, Message: "ok"})

	testutil.AssertStatus(t, w, 200)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Message != "ok" {
		t.Errorf("JSONResponse() body = %+v", resp)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "missing field")

	testutil.AssertStatus(t, w, 400)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Bad Request" || resp.Message != "missing field" {
		t.Errorf("ErrorResponse() body = %+v", resp)
	}
}
