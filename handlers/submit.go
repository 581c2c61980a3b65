// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/contactdesk/mailer"
	"github.com/danielhkuo/contactdesk/middleware"
	"github.com/danielhkuo/contactdesk/models"
	"github.com/danielhkuo/contactdesk/store"
)

// Bound on the background mail send so a stuck SMTP server cannot hold a
// goroutine forever
const notifyTimeout = 10 * time.Second

type SubmitHandler struct {
	subs     *store.SubmissionStore
	notifier mailer.Notifier
}

func NewSubmitHandler(subs *store.SubmissionStore, notifier mailer.Notifier) *SubmitHandler {
	return &SubmitHandler{subs: subs, notifier: notifier}
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Subject string `json:"subject"`
}

// Submit handles POST /submit
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest

	// The public form posts urlencoded; API callers may post JSON
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.JSONResponse(w, http.StatusBadRequest, models.SubmitResponse{
				Success: false,
				Message: "Invalid JSON",
			})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.JSONResponse(w, http.StatusBadRequest, models.SubmitResponse{
				Success: false,
				Message: "Invalid form data",
			})
			return
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Message = r.PostFormValue("message")
		req.Subject = r.PostFormValue("subject")
	}

	// Validate input - nothing is stored on failure
	if req.Name == "" || req.Email == "" || req.Message == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SubmitResponse{
			Success: false,
			Message: "Name, email, and message are required",
		})
		return
	}

	sub, err := h.subs.Insert(req.Name, req.Email, req.Message)
	if err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SubmitResponse{
			Success: false,
			Message: "An error occurred while submitting the form",
		})
		return
	}

	slog.Info("submission received", "submission_id", sub.ID, "email", sub.Email)

	// Fire-and-forget notification. The response to the submitter never
	// waits for, or reflects, the mail outcome.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := h.notifier.Notify(ctx, sub, req.Subject); err != nil {
			slog.Error("failed to send notification", "submission_id", sub.ID, "error", err)
		}
	}()

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Success: true,
		Message: "Form submitted successfully",
	})
}
