// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/contactdesk/auth"
	"github.com/danielhkuo/contactdesk/models"
)

// TTL is how long a session stays valid after login
const TTL = time.Hour

// Session is the server-held record referenced by the cookie. A live record
// is what makes a client authenticated; there is no separate flag.
type Session struct {
	Username  string
	ExpiresAt time.Time
}

// Manager holds sessions in memory, keyed by opaque ID. Lookups and writes
// for unrelated sessions never race: the map is guarded by a single RWMutex.
type Manager struct {
	secret string
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret:   secret,
		ttl:      TTL,
		sessions: make(map[string]Session),
	}
}

// Start creates an authenticated session for username and sets the signed
// cookie on the response
func (m *Manager) Start(w http.ResponseWriter, username string) {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = Session{
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    auth.EncodeCookie(id, m.secret),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns the live session referenced by the request cookie. A missing
// cookie, a bad signature, an unknown ID, and an expired record all look the
// same to the caller: no session.
func (m *Manager) Get(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(models.SessionCookie)
	if err != nil {
		return Session{}, false
	}

	id, err := auth.DecodeCookie(cookie.Value, m.secret)
	if err != nil {
		return Session{}, false
	}

	m.mu.RLock()
	sess, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return Session{}, false
	}

	if time.Now().After(sess.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return Session{}, false
	}

	return sess, true
}

// Destroy removes the session record entirely and clears the cookie
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(models.SessionCookie); err == nil {
		if id, err := auth.DecodeCookie(cookie.Value, m.secret); err == nil {
			m.mu.Lock()
			delete(m.sessions, id)
			m.mu.Unlock()
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Sweep drops expired session records. Main runs this on a ticker so
// abandoned sessions do not accumulate.
func (m *Manager) Sweep() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}

// Len reports the number of live records, expired or not. Used by tests.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
