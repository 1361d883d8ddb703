package ecode

import (
	"net/http"
	"sync"
)

// Business codes. Zero is success, negative values are failures.
const (
	OK                 = 0
	NoLogin            = -101
	CSRFErr            = -102
	RequestErr         = -400
	Unauthorized       = -401
	AccessDenied       = -403
	NotFound           = -404
	MethodNotAllowed   = -405
	Conflict           = -409
	ServerErr          = -500
	ServiceUnavailable = -503
)

var (
	messages = map[int]string{
		OK:                 "ok",
		NoLogin:            "Account not logged in",
		CSRFErr:            "CSRF verification failed",
		RequestErr:         "Invalid request",
		Unauthorized:       "Unauthorized",
		AccessDenied:       "Access denied",
		NotFound:           "Not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Conflict",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
	}
	statuses = map[int]int{
		OK:                 http.StatusOK,
		NoLogin:            http.StatusUnauthorized,
		CSRFErr:            http.StatusForbidden,
		RequestErr:         http.StatusBadRequest,
		Unauthorized:       http.StatusUnauthorized,
		AccessDenied:       http.StatusForbidden,
		NotFound:           http.StatusNotFound,
		MethodNotAllowed:   http.StatusMethodNotAllowed,
		Conflict:           http.StatusConflict,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
	}
	mu sync.RWMutex
)

// Register adds or replaces the text of a code.
func Register(code int, text string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = text
}

// Text returns the text of a code, or the server error text for unknown codes.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
