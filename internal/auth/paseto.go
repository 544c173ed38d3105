package auth

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

var ErrInvalidClaim = errors.New("invalid session claim")

// SessionClaims is the identity claim carried by the session cookie
type SessionClaims struct {
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// PasetoService mints and validates session claims as PASETO v4.local
// tokens (symmetric encryption with XChaCha20-Poly1305). Claims are
// self-contained: nothing about a session is stored server-side, and a
// claim's expiry is fixed when it is created.
type PasetoService struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoService(symmetricKey []byte) (*PasetoService, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be exactly 32 bytes, got %d", len(symmetricKey))
	}

	key, err := paseto.V4SymmetricKeyFromBytes(symmetricKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &PasetoService{
		symmetricKey: key,
	}, nil
}

// CreateToken generates a session token for the given identity with the
// given lifetime
func (s *PasetoService) CreateToken(email string, duration time.Duration) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(duration))
	token.SetString("email", email)

	return token.V4Encrypt(s.symmetricKey, nil), nil
}

// VerifyToken validates a session token and returns its claims.
//
// Every failure mode collapses to ErrInvalidClaim. An expired claim is
// deliberately indistinguishable from a missing or tampered one, so the
// gate cannot leak which part of validation failed.
func (s *PasetoService) VerifyToken(tokenStr string) (*SessionClaims, error) {
	parser := paseto.NewParser()

	token, err := parser.ParseV4Local(s.symmetricKey, tokenStr, nil)
	if err != nil {
		return nil, ErrInvalidClaim
	}

	email, err := token.GetString("email")
	if err != nil {
		return nil, ErrInvalidClaim
	}

	issuedAt, err := token.GetIssuedAt()
	if err != nil {
		return nil, ErrInvalidClaim
	}

	expiresAt, err := token.GetExpiration()
	if err != nil {
		return nil, ErrInvalidClaim
	}

	return &SessionClaims{
		Email:     email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
