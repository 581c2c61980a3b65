// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// BcryptCost is the work factor for password hashing. High enough to resist
// offline brute force on a leaked hash.
const BcryptCost = 10

// HashPassword creates a salted bcrypt hash of a plaintext password
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. bcrypt's comparison does not short-circuit on byte mismatch.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// SignSessionID computes an HMAC-SHA256 signature for a session ID
// URL-safe base64 with padding trimmed for a cleaner cookie value
func SignSessionID(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// EncodeCookie produces the cookie value "<id>.<signature>" for a session ID
func EncodeCookie(sessionID, secret string) string {
	return sessionID + "." + SignSessionID(sessionID, secret)
}

// DecodeCookie verifies a cookie value and returns the embedded session ID.
// Returns ErrInvalidCookie for malformed values and bad signatures alike.
func DecodeCookie(value, secret string) (string, error) {
	sessionID, sig, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return "", ErrInvalidCookie
	}
	expected := SignSessionID(sessionID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidCookie
	}
	return sessionID, nil
}
