// Package service contains the session business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/yatube/core/auth/data/repository"
	"github.com/ncobase/yatube/core/auth/structs"
	userService "github.com/ncobase/yatube/core/user/service"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/security/jwt"
	"github.com/ncobase/yatube/validator"
)

// UserProvider is the part of the user service sessions depend on
type UserProvider interface {
	Create(ctx context.Context, body *userStructs.CreateUserBody) (*userStructs.User, error)
	Authenticate(ctx context.Context, username, password string) (*userStructs.User, error)
	GetByID(ctx context.Context, id uint) (*userStructs.User, error)
}

// AuthService issues, resolves and revokes session tokens
type AuthService struct {
	users   UserProvider
	tokens  *jwt.TokenManager
	revoked repository.RevocationRepository
	logger  *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users UserProvider, tokens *jwt.TokenManager, revoked repository.RevocationRepository, logger *logger.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoked: revoked, logger: logger}
}

// Login checks the credentials and signs a session token.
// Wrong credentials return validator.FieldErrors.
func (s *AuthService) Login(ctx context.Context, form *structs.LoginForm) (*structs.Session, error) {
	if errs := validator.ValidateStruct(form); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.users.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			s.logger.Warn(ctx, "login failed", "username", form.Username)
			return nil, validator.FieldErrors{validator.NonFieldKey: "Please enter a correct username and password."}
		}
		return nil, err
	}

	token, claims, err := s.tokens.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID, "username", user.Username)
	return &structs.Session{
		Token:    token,
		TokenID:  claims.ID,
		UserID:   user.ID,
		Username: user.Username,
		TTL:      s.tokens.TTL(claims),
	}, nil
}

// Authenticate resolves a session token to its account. Invalid, expired and
// revoked tokens return an error wrapping jwt.ErrInvalidToken,
// jwt.ErrTokenExpired or structs.ErrSessionRevoked.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*userStructs.User, error) {
	claims, err := s.tokens.DecodeSessionToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, structs.ErrSessionRevoked
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, userStructs.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: account removed", jwt.ErrInvalidToken)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout revokes the token for the rest of its lifetime. Tokens that are
// already invalid need no revocation.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.DecodeSessionToken(token)
	if err != nil {
		return nil
	}

	// the revocation must survive a client that disconnects mid request
	rctx, cancel := ctxutil.Detach(ctx, ctxutil.DefaultAsyncTimeout)
	defer cancel()

	if err := s.revoked.Revoke(rctx, claims.ID, s.tokens.TTL(claims)); err != nil {
		s.logger.Error(ctx, "failed to revoke session", "user_id", claims.UserID, "error", err)
		return err
	}
	s.logger.Info(ctx, "user logged out", "user_id", claims.UserID, "username", claims.Username)
	return nil
}

// Signup registers a new account. Rejected forms return validator.FieldErrors
// keyed by the signup form fields.
func (s *AuthService) Signup(ctx context.Context, form *structs.SignupForm) (*userStructs.User, error) {
	body := &userStructs.CreateUserBody{
		Username:  strings.TrimSpace(form.Username),
		Password:  form.Password1,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     strings.TrimSpace(form.Email),
	}

	errs := validator.ValidateStruct(form)
	mergeSignupErrors(errs, validator.ValidateStruct(body))
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.users.Create(ctx, body)
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		mergeSignupErrors(errs, fieldErrs)
		return nil, errs
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// mergeSignupErrors moves account errors onto the signup form fields
func mergeSignupErrors(dst, src validator.FieldErrors) {
	for k, v := range src {
		if k == "password" {
			k = "password1"
		}
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}
