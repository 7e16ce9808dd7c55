package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore holds the single demo user record the login endpoint
// checks against. The stored password may be plain text or a bcrypt hash.
type CredentialStore struct {
	username string
	password string
}

func NewCredentialStore(username, password string) *CredentialStore {
	return &CredentialStore{username: username, password: password}
}

// Authenticate compares the supplied credentials against the stored record.
// The error is always ErrInvalidCredentials on mismatch so callers cannot
// tell which field was wrong.
func (s *CredentialStore) Authenticate(username, password string) error {
	if s == nil {
		return ErrInvalidCredentials
	}
	if username != s.username {
		return ErrInvalidCredentials
	}
	if verifyPassword(password, s.password) {
		return nil
	}
	return ErrInvalidCredentials
}

// HashPassword produces a bcrypt hash for storing in config.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func verifyPassword(password, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return password == stored
}
