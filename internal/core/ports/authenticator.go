package ports

import "errors"

// ErrInvalidAdminToken is returned by authenticators for missing,
// malformed, or unverifiable credentials.
var ErrInvalidAdminToken = errors.New("invalid admin token")

// AdminIdentity describes an authenticated administrator.
type AdminIdentity struct {
	Username string
}

// AdminAuthenticator verifies admin credentials presented to protected
// routes. Credential storage and token issuance are external concerns;
// the core only consumes this capability.
type AdminAuthenticator interface {
	Authenticate(token string) (AdminIdentity, error)
}
