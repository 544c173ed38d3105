package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewPasetoServiceKeyLength(t *testing.T) {
	t.Parallel()

	_, err := NewPasetoService([]byte("too short"))
	assert.Error(t, err)

	_, err = NewPasetoService(testKey)
	assert.NoError(t, err)
}

func TestCreateAndVerifyToken(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	token, err := svc.CreateToken("alice@example.com", 30*time.Minute)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	// The expiry is fixed at creation: exactly issued-at plus the lifetime
	assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt, time.Second)
}

func TestVerifyTokenDoesNotExtendExpiry(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	token, err := svc.CreateToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	first, err := svc.VerifyToken(token)
	require.NoError(t, err)

	// Activity must not slide the window
	second, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	token, err := svc.CreateToken("alice@example.com", 50*time.Millisecond)
	require.NoError(t, err)

	// Accepted strictly before the deadline
	_, err = svc.VerifyToken(token)
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	// Rejected at and after the deadline, with the same opaque error as
	// any other failure
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaim)
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	token, err := svc.CreateToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidClaim)

	_, err = svc.VerifyToken("not a token at all")
	assert.ErrorIs(t, err, ErrInvalidClaim)
}

func TestWrongKeyRejected(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	other, err := NewPasetoService([]byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)

	token, err := svc.CreateToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaim)
}
