package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// EncryptPassword hashes a password with bcrypt
func EncryptPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword verifies a password against its bcrypt hash
func ComparePassword(encodePassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodePassword), []byte(password)) == nil
}
