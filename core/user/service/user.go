// Package service contains account business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncobase/yatube/core/user/data/repository"
	"github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ecode"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/util"
	"github.com/ncobase/yatube/validator"
)

// ReservedUsernames are first path segments owned by the site itself
var ReservedUsernames = []string{"group", "new", "auth", "about", "health"}

// ErrInvalidCredentials is returned when the username or password is wrong
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService manages accounts
type UserService struct {
	repo   repository.UserRepository
	logger *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create validates the body and stores a new account with a hashed password.
// Rejected bodies return validator.FieldErrors.
func (s *UserService) Create(ctx context.Context, body *structs.CreateUserBody) (*structs.User, error) {
	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(body.Email)

	if errs := validator.ValidateStruct(body); len(errs) > 0 {
		return nil, errs
	}
	if util.Contains(ReservedUsernames, strings.ToLower(body.Username)) {
		return nil, validator.FieldErrors{"username": ecode.AlreadyExist()}
	}

	hash, err := util.EncryptPassword(body.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &structs.User{
		Username:   body.Username,
		Password:   hash,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Email:      body.Email,
		DateJoined: time.Now(),
	})
	if errors.Is(err, structs.ErrUsernameTaken) {
		return nil, validator.FieldErrors{"username": ecode.AlreadyExist()}
	}
	if err != nil {
		s.logger.Error(ctx, "failed to create user", "username", body.Username, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate returns the account matching the credentials
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*structs.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, structs.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !util.ComparePassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the account with the given id
func (s *UserService) GetByID(ctx context.Context, id uint) (*structs.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername returns the account with the given username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*structs.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Delete removes the account and, through the schema, its posts
func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		if !errors.Is(err, structs.ErrUserNotFound) {
			s.logger.Error(ctx, "failed to delete user", "username", username, "error", err)
		}
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	s.logger.Info(ctx, "user deleted", "username", username)
	return nil
}
