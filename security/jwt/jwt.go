package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultSessionExpire = time.Hour * 24 * 14

	sessionSubject = "session"

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
	ErrInvalidToken      = TokenError("invalid token")
	ErrTokenExpired      = TokenError("token expired")
)

// SessionClaims is the body of a session token
type SessionClaims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwtstd.RegisteredClaims
}

// TokenManager handles JWT token operations
type TokenManager struct {
	key    string
	expire time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string, expire time.Duration) *TokenManager {
	if expire <= 0 {
		expire = DefaultSessionExpire
	}
	return &TokenManager{key: key, expire: expire, now: time.Now}
}

// Expire returns the lifetime of issued tokens
func (jtm *TokenManager) Expire() time.Duration {
	return jtm.expire
}

// validateKey validates the token key
func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

// GenerateSessionToken signs a session token for the user with a fresh token id
func (jtm *TokenManager) GenerateSessionToken(userID uint, username string) (string, *SessionClaims, error) {
	if err := jtm.validateKey(); err != nil {
		return "", nil, err
	}

	now := jtm.now()
	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtstd.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sessionSubject,
			IssuedAt:  jwtstd.NewNumericDate(now),
			ExpiresAt: jwtstd.NewNumericDate(now.Add(jtm.expire)),
		},
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(jtm.key))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, claims, nil
}

// DecodeSessionToken validates the signature and expiry of a session token
func (jtm *TokenManager) DecodeSessionToken(tokenString string) (*SessionClaims, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, err
	}

	claims := &SessionClaims{}
	token, err := jwtstd.ParseWithClaims(tokenString, claims, func(token *jwtstd.Token) (any, error) {
		return []byte(jtm.key), nil
	},
		jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}),
		jwtstd.WithSubject(sessionSubject),
		jwtstd.WithTimeFunc(jtm.now),
	)
	if err != nil {
		if errors.Is(err, jwtstd.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL returns how long the claims remain valid
func (jtm *TokenManager) TTL(claims *SessionClaims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	ttl := claims.ExpiresAt.Sub(jtm.now())
	if ttl < 0 {
		return 0
	}
	return ttl
}
