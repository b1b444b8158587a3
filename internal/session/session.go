// internal/session/session.go
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

// Claims mirrors the backend's access-token payload. The server is the
// verifier; the client only reads identity and expiry out of the token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Store holds the process-wide authenticated session. Every reader re-reads
// the token on each request instead of caching a copy.
type Store struct {
	mu        sync.RWMutex
	token     string
	user      models.User
	claims    *Claims
	onExpired func()
}

func NewStore() *Store {
	return &Store{}
}

// OnExpired registers the side effect run when the session is invalidated by
// the server (401). It fires at most once per active session.
func (s *Store) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = fn
}

// Init installs a fresh session after login. Token claims are decoded
// best-effort; an opaque token still yields a usable session.
func (s *Store) Init(token string, user models.User) {
	claims := decodeClaims(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.claims = claims
}

// Clear tears the session down. It reports whether there was a session to
// clear, so expiry side effects can stay idempotent.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return false
	}
	s.token = ""
	s.user = models.User{}
	s.claims = nil
	return true
}

// Expire clears the session and fires the registered expiry hook. Safe to
// call multiple times concurrently; the hook runs once.
func (s *Store) Expire() {
	s.mu.Lock()
	cleared := s.token != ""
	s.token = ""
	s.user = models.User{}
	s.claims = nil
	fn := s.onExpired
	s.mu.Unlock()

	if cleared && fn != nil {
		fn()
	}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt returns the token expiry when the token carried one.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.claims == nil || s.claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.claims.ExpiresAt.Time, true
}

func decodeClaims(token string) *Claims {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
