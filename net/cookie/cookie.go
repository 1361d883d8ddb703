package cookie

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Cookie names
const (
	SessionTokenName = "session_token"
	CSRFTokenName    = "csrf_token"
)

// CSRFTokenMaxAge is the lifetime of the CSRF cookie in seconds
const CSRFTokenMaxAge = 60 * 60 * 24 * 365

// Options carries the attributes shared by every cookie of the site.
type Options struct {
	Domain string
	Secure bool
}

// formatDomain formats the domain
func formatDomain(domain string) string {
	if domain != "localhost" && !strings.HasPrefix(domain, ".") {
		return "." + domain
	}
	return domain
}

func (o Options) build(name, value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if o.Domain != "" {
		c.Domain = formatDomain(o.Domain)
	}
	return c
}

// SetSessionToken sets the signed session token cookie
func SetSessionToken(w http.ResponseWriter, token string, ttl time.Duration, opts Options) error {
	if token == "" {
		return fmt.Errorf("session token cannot be empty")
	}
	http.SetCookie(w, opts.build(SessionTokenName, token, int(ttl.Seconds())))
	return nil
}

// GetSessionToken gets the session token cookie
func GetSessionToken(r *http.Request) (string, error) {
	return Get(r, SessionTokenName)
}

// ClearSessionToken expires the session token cookie
func ClearSessionToken(w http.ResponseWriter, opts Options) {
	http.SetCookie(w, opts.build(SessionTokenName, "", -1))
}

// SetCSRFToken sets the CSRF token cookie
func SetCSRFToken(w http.ResponseWriter, csrfToken string, opts Options) error {
	if csrfToken == "" {
		return fmt.Errorf("CSRF token cannot be empty")
	}
	http.SetCookie(w, opts.build(CSRFTokenName, csrfToken, CSRFTokenMaxAge))
	return nil
}

// GetCSRFToken gets the CSRF token cookie
func GetCSRFToken(r *http.Request) (string, error) {
	return Get(r, CSRFTokenName)
}

// Get gets a non-empty cookie value by name
func Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	if c.Value == "" {
		return "", http.ErrNoCookie
	}
	return c.Value, nil
}
