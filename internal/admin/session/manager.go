package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"sync"
	"time"

	"karsamrit/internal/config"
	apperrors "karsamrit/internal/errors"
)

const tokenBytes = 24

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Session is one authenticated admin connection. Sessions live until
// explicit logout or process restart; there is no TTL.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}

// Manager owns the token -> session map and enforces the concurrent
// session cap. All access goes through one injected instance.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]Session
	username    string
	password    string
	maxSessions int
}

func NewManager(cfg config.AdminConfig) *Manager {
	return &Manager{
		sessions:    make(map[string]Session),
		username:    cfg.Username,
		password:    cfg.Password,
		maxSessions: cfg.MaxSessions,
	}
}

// Login validates the credentials and issues a new bearer token. The cap
// check and the insert happen under one lock so concurrent logins cannot
// exceed the maximum.
func (m *Manager) Login(username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, apperrors.NewValidationError("Username and password are required")
	}

	if !usernamePattern.MatchString(username) {
		return Session{}, apperrors.NewValidationError("Invalid username format. Only letters and digits are allowed.")
	}

	if username != m.username || password != m.password {
		return Session{}, apperrors.NewAuthError("Invalid credentials")
	}

	token, err := generateToken()
	if err != nil {
		return Session{}, apperrors.NewInternalError("generating session token", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return Session{}, apperrors.NewCapacityError("Admin user limit exceeded. Please try again later.")
	}

	s := Session{
		Token:     token,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	m.sessions[token] = s

	return s, nil
}

// Validate resolves a bearer token, guarding every admin-only operation.
func (m *Manager) Validate(token string) (Session, error) {
	if token == "" {
		return Session{}, apperrors.NewAuthError("Missing admin token")
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return Session{}, apperrors.NewAuthError("Invalid or expired admin session")
	}

	return s, nil
}

// Logout removes the session if present. Unknown tokens are not an error.
func (m *Manager) Logout(token string) {
	if token == "" {
		return
	}

	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Describe reports whether the token maps to an active session, for the
// dashboard's silent re-authentication on reload.
func (m *Manager) Describe(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	return s, ok
}

func (m *Manager) MaxSessions() int {
	return m.maxSessions
}

// ActiveCount returns the number of live sessions.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
