package auth

import "time"

// TokenService defines the interface for session claim creation and
// validation. PasetoService is the production implementation.
type TokenService interface {
	CreateToken(email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*SessionClaims, error)
}

// IdentityResolver reports whether an identity still resolves to a user
// record. The user directory satisfies this; the gate only needs the
// existence check.
type IdentityResolver interface {
	Exists(email string) bool
}
