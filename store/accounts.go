// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/contactdesk/auth"
	"github.com/danielhkuo/contactdesk/models"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountStore provides database-backed admin account operations
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FindByUsername looks up an account. Returns ErrAccountNotFound when no
// account has that username.
func (s *AccountStore) FindByUsername(username string) (models.Account, error) {
	var acct models.Account
	err := s.db.QueryRow(`
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`, username).Scan(&acct.ID, &acct.Username, &acct.PasswordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	return acct, nil
}

// Create inserts a new account with an already-hashed password.
// Username uniqueness is enforced by the users table.
func (s *AccountStore) Create(username, passwordHash string) (models.Account, error) {
	acct := models.Account{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := s.db.QueryRow(`
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&acct.ID)

	if err != nil {
		return models.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return acct, nil
}

// EnsureAdmin creates the configured admin account if it does not exist yet.
// Idempotent across restarts because the lookup precedes the insert. The
// caller treats any error as fatal: the service must not run without a
// verifiable admin identity.
func (s *AccountStore) EnsureAdmin(username, plaintext string) error {
	_, err := s.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return err
	}

	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		return err
	}

	if _, err := s.Create(username, hash); err != nil {
		return err
	}

	slog.Info("admin account created", "username", username)
	return nil
}
