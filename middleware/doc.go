// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /submit", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Guard

Wrap protected handlers at registration time:

	mux.HandleFunc("GET /dashboard",
		middleware.WithLogging(middleware.RequireAuth(sessions, handler)))

Requests without a live session receive a 302 redirect to /login. There is
no error body and no distinction between a missing and an expired session.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req submitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
