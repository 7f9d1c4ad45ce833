// Package session holds the authenticated user's tokens and identity. The
// store is an explicit dependency handed to gateway constructors, never a
// package-level singleton, and persists to a JSON file so a new process
// resumes the previous session.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type User struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type state struct {
	Tokens Tokens `json:"tokens"`
	User   User   `json:"user"`
	Theme  string `json:"theme,omitempty"`
}

// Store is safe for concurrent use: gateways read it on every call while
// login/logout/token updates are rare writes.
type Store struct {
	path string

	mu sync.RWMutex
	st state
}

// NewStore opens the session file at path, loading any persisted session.
// A missing file is a logged-out session, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.st); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

// Login replaces the session and persists it.
func (s *Store) Login(t Tokens, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Tokens = t
	s.st.User = u
	return s.persist()
}

// Logout clears tokens and identity but keeps preferences.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Tokens = Tokens{}
	s.st.User = User{}
	return s.persist()
}

// SetAccessToken swaps the access token in place, e.g. after the backend
// hands out a fresh one.
func (s *Store) SetAccessToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Tokens.AccessToken = tok
	return s.persist()
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Tokens.AccessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Tokens.RefreshToken
}

// LoggedIn reports whether an access token is present. Whether it is still
// accepted is the backend's call; expiry surfaces as an unauthorized error on
// the next request.
func (s *Store) LoggedIn() bool {
	return s.AccessToken() != ""
}

// UserID returns the stored user id, falling back to the access token's
// subject claim.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User.UserID != "" {
		return s.st.User.UserID
	}
	return s.claim("sub", "user_id")
}

// Email returns the stored email, falling back to token claims.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User.Email != "" {
		return s.st.User.Email
	}
	return s.claim("email")
}

// Role returns the stored role, falling back to token claims.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User.Role != "" {
		return s.st.User.Role
	}
	return s.claim("role")
}

func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Theme = theme
	return s.persist()
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Theme
}

// claim extracts the first present string claim from the unverified access
// token. Verification belongs to the backend; the client only derives
// identity hints for display and role-gated UI.
func (s *Store) claim(names ...string) string {
	if s.st.Tokens.AccessToken == "" {
		return ""
	}
	token, _, err := jwt.NewParser().ParseUnverified(s.st.Tokens.AccessToken, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	for _, name := range names {
		if v, ok := claims[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// persist writes the session file with owner-only permissions. Callers hold
// the write lock.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
