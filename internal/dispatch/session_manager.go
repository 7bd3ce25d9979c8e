package dispatch

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Session is one issued login token.
type Session struct {
	Token     string
	Login     string
	CreatedAt time.Time
}

// SessionManager issues and verifies login tokens.
// In-memory only: tokens do not survive a restart, the client re-logs.
type SessionManager struct {
	mu       sync.RWMutex
	byToken  map[string]*Session
	byLogin  map[string]string // login → active token
	tokenTTL time.Duration
}

// NewSessionManager creates a session manager with the given token TTL.
func NewSessionManager(tokenTTL time.Duration) *SessionManager {
	return &SessionManager{
		byToken:  make(map[string]*Session),
		byLogin:  make(map[string]string),
		tokenTTL: tokenTTL,
	}
}

// NewSession issues a fresh token for the login, revoking any previous one.
func (sm *SessionManager) NewSession(login string) (*Session, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	token := hex.EncodeToString(buf)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if old, ok := sm.byLogin[login]; ok {
		delete(sm.byToken, old)
	}
	s := &Session{Token: token, Login: login, CreatedAt: time.Now()}
	sm.byToken[token] = s
	sm.byLogin[login] = token
	return s, nil
}

// Verify returns the session for a token if it exists and has not expired.
func (sm *SessionManager) Verify(token string) (*Session, bool) {
	sm.mu.RLock()
	s, ok := sm.byToken[token]
	sm.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(s.CreatedAt) > sm.tokenTTL {
		sm.Revoke(token)
		return nil, false
	}
	return s, true
}

// Revoke removes a token.
func (sm *SessionManager) Revoke(token string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s, ok := sm.byToken[token]; ok {
		delete(sm.byLogin, s.Login)
		delete(sm.byToken, token)
	}
}

// SessionCount returns the number of live sessions.
func (sm *SessionManager) SessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.byToken)
}
