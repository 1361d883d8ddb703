// Package structs defines the user account model.
package structs

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating an account with a used name
	ErrUsernameTaken = errors.New("username already taken")
)

// User is an account that authors posts
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	FirstName  string    `gorm:"size:150" json:"first_name"`
	LastName   string    `gorm:"size:150" json:"last_name"`
	Email      string    `gorm:"size:254" json:"email"`
	DateJoined time.Time `gorm:"not null" json:"date_joined"`
}

// TableName sets the table of the model
func (User) TableName() string {
	return "users"
}

// FullName returns "first last", or the username when both are empty
func (u *User) FullName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Username
}

func (u *User) String() string {
	return u.Username
}

// CreateUserBody holds the fields of a new account
type CreateUserBody struct {
	Username  string `form:"username" json:"username" validate:"required,max=150,username"`
	Password  string `form:"password" json:"password" validate:"required,min=8"`
	FirstName string `form:"first_name" json:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" json:"last_name" validate:"max=150"`
	Email     string `form:"email" json:"email" validate:"omitempty,email,max=254"`
}
