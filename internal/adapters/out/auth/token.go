// Package auth provides the admin-credential adapter. The service never
// stores or issues credentials itself; it only verifies a presented token
// against a bcrypt hash supplied through configuration.
package auth

import (
	"fmt"

	"printshop/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// BcryptTokenAuthenticator verifies bearer tokens against a single
// configured bcrypt hash. It implements ports.AdminAuthenticator.
type BcryptTokenAuthenticator struct {
	hash []byte
}

// NewBcryptTokenAuthenticator creates an authenticator from the configured
// hash. An empty hash is rejected so a misconfigured deployment fails at
// startup instead of silently accepting nothing.
func NewBcryptTokenAuthenticator(hash string) (*BcryptTokenAuthenticator, error) {
	if hash == "" {
		return nil, fmt.Errorf("admin token hash is not configured")
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("admin token hash is not a valid bcrypt hash: %w", err)
	}
	return &BcryptTokenAuthenticator{hash: []byte(hash)}, nil
}

// Authenticate compares the presented token against the configured hash.
func (a *BcryptTokenAuthenticator) Authenticate(token string) (ports.AdminIdentity, error) {
	if token == "" {
		return ports.AdminIdentity{}, ports.ErrInvalidAdminToken
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(token)); err != nil {
		return ports.AdminIdentity{}, ports.ErrInvalidAdminToken
	}
	return ports.AdminIdentity{Username: "admin"}, nil
}
