// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/contactdesk/models"
)

// SubmissionStore provides database-backed contact submission operations
type SubmissionStore struct {
	db *sql.DB
}

func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Insert stores a new submission and returns it with the assigned id and
// timestamp
func (s *SubmissionStore) Insert(name, email, message string) (models.Submission, error) {
	sub := models.Submission{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.QueryRow(`
		INSERT INTO submissions (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, sub.Name, sub.Email, sub.Message, sub.CreatedAt).Scan(&sub.ID)

	if err != nil {
		return models.Submission{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	return sub, nil
}

// List returns all submissions newest-first
func (s *SubmissionStore) List() ([]models.Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, message, created_at
		FROM submissions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}

	return submissions, rows.Err()
}

// Delete removes a submission by id. Deleting an id that does not exist is
// not an error.
func (s *SubmissionStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}
