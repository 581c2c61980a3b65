// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/danielhkuo/contactdesk/auth"
	"github.com/danielhkuo/contactdesk/testutil"
)

func TestFindByUsername(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	testutil.CreateTestAccount(t, conn, "admin", "hunter2")

	acct, err := accts.FindByUsername("admin")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if acct.Username != "admin" {
		t.Errorf("FindByUsername().Username = %q, want %q", acct.Username, "admin")
	}
	if !auth.CheckPassword(acct.PasswordHash, "hunter2") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestFindByUsernameMissing(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	_, err := accts.FindByUsername("nobody")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("FindByUsername() error = %v, want ErrAccountNotFound", err)
	}
}

func TestCreateEnforcesUniqueUsernames(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	if _, err := accts.Create("admin", "hash-one"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := accts.Create("admin", "hash-two"); err == nil {
		t.Error("Create() allowed a duplicate username")
	}
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	if err := accts.EnsureAdmin("admin", "bootstrap-pass"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}

	acct, err := accts.FindByUsername("admin")
	if err != nil {
		t.Fatalf("FindByUsername() after bootstrap error = %v", err)
	}
	if !auth.CheckPassword(acct.PasswordHash, "bootstrap-pass") {
		t.Error("bootstrap hash does not verify against the configured password")
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	// Simulates restarting the process twice with the same env
	if err := accts.EnsureAdmin("admin", "bootstrap-pass"); err != nil {
		t.Fatalf("first EnsureAdmin() error = %v", err)
	}
	if err := accts.EnsureAdmin("admin", "bootstrap-pass"); err != nil {
		t.Fatalf("second EnsureAdmin() error = %v", err)
	}

	if got := testutil.CountAccounts(t, conn); got != 1 {
		t.Errorf("account count after two bootstraps = %d, want 1", got)
	}
}

func TestEnsureAdminKeepsExistingHash(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	accts := NewAccountStore(conn)

	if err := accts.EnsureAdmin("admin", "original-pass"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	before, _ := accts.FindByUsername("admin")

	// A changed env password does not rewrite an existing account
	if err := accts.EnsureAdmin("admin", "different-pass"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	after, _ := accts.FindByUsername("admin")

	if before.PasswordHash != after.PasswordHash {
		t.Error("EnsureAdmin() rewrote the hash of an existing account")
	}
}
