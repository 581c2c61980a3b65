// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/contactdesk/auth"
	"github.com/danielhkuo/contactdesk/session"
	"github.com/danielhkuo/contactdesk/store"
	"github.com/danielhkuo/contactdesk/views"
)

// Shown for unknown usernames and wrong passwords alike, so the login form
// cannot be used to enumerate accounts
const badCredentialsMsg = "Invalid username or password"

type AdminHandler struct {
	subs     *store.SubmissionStore
	accts    *store.AccountStore
	sessions *session.Manager
	views    *views.Renderer
}

func NewAdminHandler(subs *store.SubmissionStore, accts *store.AccountStore, sessions *session.Manager, renderer *views.Renderer) *AdminHandler {
	return &AdminHandler{subs: subs, accts: accts, sessions: sessions, views: renderer}
}

// LoginPage handles GET /login
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Login(w, ""); err != nil {
		slog.Error("failed to render login page", "error", err)
	}
}

// Login handles POST /login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, badCredentialsMsg)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	acct, err := h.accts.FindByUsername(username)
	if errors.Is(err, store.ErrAccountNotFound) {
		h.renderLogin(w, badCredentialsMsg)
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		h.renderLogin(w, "An error occurred during login")
		return
	}

	if !auth.CheckPassword(acct.PasswordHash, password) {
		h.renderLogin(w, badCredentialsMsg)
		return
	}

	h.sessions.Start(w, acct.Username)
	slog.Info("admin logged in", "username", acct.Username)

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout handles GET /logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Dashboard handles GET /dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)

	submissions, err := h.subs.List()
	if err != nil {
		slog.Error("failed to list submissions", "error", err)
		http.Error(w, "An error occurred while loading the dashboard", http.StatusInternalServerError)
		return
	}

	if err := h.views.Dashboard(w, sess.Username, submissions); err != nil {
		slog.Error("failed to render dashboard", "error", err)
	}
}

// Delete handles POST /delete/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid submission id", http.StatusBadRequest)
		return
	}

	// Deleting an id that no longer exists still redirects
	if err := h.subs.Delete(id); err != nil {
		slog.Error("failed to delete submission", "submission_id", id, "error", err)
		http.Error(w, "An error occurred while deleting the submission", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *AdminHandler) renderLogin(w http.ResponseWriter, errMsg string) {
	if err := h.views.Login(w, errMsg); err != nil {
		slog.Error("failed to render login page", "error", err)
	}
}
