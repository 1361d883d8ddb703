// Package structs defines the authentication forms.
package structs

import (
	"errors"
	"time"
)

// ErrSessionRevoked is returned for a token that was logged out
var ErrSessionRevoked = errors.New("session revoked")

// LoginForm is the body of the login form
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// SignupForm is the body of the signup form
type SignupForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// Session is an authenticated session
type Session struct {
	Token    string
	TokenID  string
	UserID   uint
	Username string
	TTL      time.Duration
}
