package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager("test-secret", ttl)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Minute)
	require.Error(t, err)
}

func TestGenerateAndParseRoundTrip(t *testing.T) {
	tm := newTestTokenManager(t, DefaultTokenTTL)

	token, expiresAt, err := tm.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Time.Unix())
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenManager(t, time.Minute)
	verifier, err := NewTokenManager("a-different-secret", time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := newTestTokenManager(t, time.Minute)

	claims := &jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Parse(stale)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := newTestTokenManager(t, time.Minute)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tm.Parse(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestParseRejectsUnsignedAlgorithm(t *testing.T) {
	tm := newTestTokenManager(t, time.Minute)

	claims := &jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(unsigned)
	require.Error(t, err)
}

func TestExpiryOf(t *testing.T) {
	tm := newTestTokenManager(t, time.Minute)

	token, expiresAt, err := tm.Generate("alice@example.com")
	require.NoError(t, err)

	got, ok := tm.ExpiryOf(token)
	require.True(t, ok)
	assert.Equal(t, expiresAt.Unix(), got.Unix())

	_, ok = tm.ExpiryOf("garbage")
	assert.False(t, ok)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject: "alice@example.com",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, ok = tm.ExpiryOf(noExpiry)
	assert.False(t, ok)
}
