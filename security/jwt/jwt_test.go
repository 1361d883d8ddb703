package jwt

import (
	"errors"
	"testing"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecode(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, claims, err := m.GenerateSessionToken(7, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	decoded, err := m.DecodeSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), decoded.UserID)
	assert.Equal(t, "alice", decoded.Username)
	assert.Equal(t, claims.ID, decoded.ID)
}

func TestTokenIDsAreUnique(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	_, a, err := m.GenerateSessionToken(1, "a")
	require.NoError(t, err)
	_, b, err := m.GenerateSessionToken(1, "a")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	token, _, err := NewTokenManager("secret", time.Hour).GenerateSessionToken(1, "a")
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).DecodeSessionToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestDecodeRejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _, err := m.GenerateSessionToken(1, "a")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.DecodeSessionToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeRejectsOtherAlgorithms(t *testing.T) {
	claims := &SessionClaims{
		UserID: 1,
		RegisteredClaims: jwtstd.RegisteredClaims{
			ID:        "x",
			Subject:   sessionSubject,
			ExpiresAt: jwtstd.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtstd.NewWithClaims(jwtstd.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).DecodeSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingKey(t *testing.T) {
	m := NewTokenManager("", 0)
	assert.Equal(t, DefaultSessionExpire, m.Expire())

	_, _, err := m.GenerateSessionToken(1, "a")
	assert.ErrorIs(t, err, ErrNeedTokenProvider)
	_, err = m.DecodeSessionToken("x")
	assert.ErrorIs(t, err, ErrNeedTokenProvider)
}

func TestTTL(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	_, claims, err := m.GenerateSessionToken(1, "a")
	require.NoError(t, err)

	ttl := m.TTL(claims)
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, "ttl = %v", ttl)
	assert.Zero(t, m.TTL(nil))
}
