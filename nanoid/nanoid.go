package nanoid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16

	// CSRFTokenSize is the length of CSRF tokens
	CSRFTokenSize = 32

	alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 && l[0] > 0 {
		size = l[0]
	}
	return size
}

// Must generate optional length nanoid
func Must(l ...int) string {
	return gonanoid.Must(getSize(l...))
}

// String generate optional length alphanumeric nanoid
func String(l ...int) string {
	return gonanoid.MustGenerate(alphanumeric, getSize(l...))
}

// CSRFToken generates a token safe to embed in HTML forms and cookies
func CSRFToken() string {
	return String(CSRFTokenSize)
}

// IsToken reports whether s looks like a token produced by String
func IsToken(s string, size int) bool {
	if len(s) != size {
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
