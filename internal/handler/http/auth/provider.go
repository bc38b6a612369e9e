package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
)

// Credentials carries a login attempt.
type Credentials struct {
	Username string
	Password string
}

// Provider validates credentials and resolves the role of a user.
type Provider interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
	IdentifyUser(ctx context.Context, username string) (string, error)
}

// BasicAuthProvider implements environment-based authentication with a single
// admin account read from ADMIN_USER / ADMIN_USER_PASSWORD.
type BasicAuthProvider struct{}

// ValidateCredentials validates credentials against environment variables.
func (p *BasicAuthProvider) ValidateCredentials(ctx context.Context, creds Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")

	// Use constant-time comparison to prevent timing attacks
	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(adminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(adminPass)) == 1

	if !userMatch || !passMatch {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// IdentifyUser returns the role for a given username.
// Only the admin account exists; anything else is unknown.
func (p *BasicAuthProvider) IdentifyUser(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username must not be empty")
	}

	adminUser := os.Getenv("ADMIN_USER")
	if subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) == 1 {
		return "admin", nil
	}
	return "", fmt.Errorf("user not found")
}
