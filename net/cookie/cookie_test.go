package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	if err := SetSessionToken(w, "tok", time.Hour, Options{Domain: "example.com", Secure: true}); err != nil {
		t.Fatalf("SetSessionToken() error = %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionTokenName || c.Value != "tok" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if c.MaxAge != 3600 || !c.HttpOnly || !c.Secure {
		t.Errorf("unexpected attributes: %+v", c)
	}
	if c.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", c.Domain)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionTokenName, Value: "tok"})
	got, err := GetSessionToken(r)
	if err != nil || got != "tok" {
		t.Errorf("GetSessionToken() = %q, %v", got, err)
	}
}

func TestSetSessionTokenRejectsEmpty(t *testing.T) {
	if err := SetSessionToken(httptest.NewRecorder(), "", time.Hour, Options{}); err == nil {
		t.Errorf("expected error for empty token")
	}
}

func TestClearSessionToken(t *testing.T) {
	w := httptest.NewRecorder()
	ClearSessionToken(w, Options{})

	c := w.Result().Cookies()[0]
	if c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("expected expired cookie, got %+v", c)
	}
}

func TestGetMissingOrEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := GetCSRFToken(r); err == nil {
		t.Errorf("expected error for missing cookie")
	}

	r.AddCookie(&http.Cookie{Name: CSRFTokenName, Value: ""})
	if _, err := GetCSRFToken(r); err == nil {
		t.Errorf("expected error for empty cookie")
	}
}

func TestFormatDomain(t *testing.T) {
	tests := map[string]string{
		"localhost":    "localhost",
		"example.com":  ".example.com",
		".example.com": ".example.com",
	}
	for in, want := range tests {
		if got := formatDomain(in); got != want {
			t.Errorf("formatDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
