package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndAuthorize(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tok, err := m.Issue("1", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Authorize(tok, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestAuthorizeRejectsWrongRole(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	tok, err := m.Issue("7", RoleCustomer)
	require.NoError(t, err)

	_, err = m.Authorize(tok, RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeRejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.Issue("7", RoleCustomer)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Authorize(tok, RoleCustomer)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeRejectsForeignSecretAndGarbage(t *testing.T) {
	other := NewTokenManager("other-secret", time.Hour)
	tok, err := other.Issue("7", RoleCustomer)
	require.NoError(t, err)

	m := NewTokenManager("test-secret", time.Hour)
	for name, raw := range map[string]string{
		"foreign secret": tok,
		"garbage":        "not.a.token",
		"empty":          "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Authorize(raw, RoleCustomer)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestAuthorizeRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).Authorize(raw, RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
