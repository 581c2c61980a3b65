// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/contactdesk/handlers"
	"github.com/danielhkuo/contactdesk/mailer"
	"github.com/danielhkuo/contactdesk/middleware"
	"github.com/danielhkuo/contactdesk/session"
	"github.com/danielhkuo/contactdesk/store"
	"github.com/danielhkuo/contactdesk/views"
)

// Deps carries the service objects the routes dispatch to
type Deps struct {
	Submissions *store.SubmissionStore
	Accounts    *store.AccountStore
	Sessions    *session.Manager
	Notifier    mailer.Notifier
	Renderer    *views.Renderer
	StaticDir   string
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	submitHandler := handlers.NewSubmitHandler(deps.Submissions, deps.Notifier)
	adminHandler := handlers.NewAdminHandler(deps.Submissions, deps.Accounts, deps.Sessions, deps.Renderer)

	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(deps.Sessions, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public contact form
	mux.HandleFunc("POST /submit", middleware.WithLogging(submitHandler.Submit))

	// Admin login
	mux.HandleFunc("GET /login", middleware.WithLogging(adminHandler.LoginPage))
	mux.HandleFunc("POST /login", middleware.WithLogging(adminHandler.Login))

	// Protected admin routes
	mux.HandleFunc("GET /logout", guard(adminHandler.Logout))
	mux.HandleFunc("GET /dashboard", guard(adminHandler.Dashboard))
	mux.HandleFunc("POST /delete/{id}", guard(adminHandler.Delete))

	// Static landing page and assets
	mux.Handle("GET /", http.FileServer(http.Dir(deps.StaticDir)))

	return mux
}
