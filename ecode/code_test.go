package ecode

import (
	"net/http"
	"testing"
)

func TestText(t *testing.T) {
	if got := Text(NotFound); got != "Not found" {
		t.Errorf("Text(NotFound) = %q", got)
	}
	if got := Text(-9999); got != Text(ServerErr) {
		t.Errorf("Text(unknown) = %q, want server error text", got)
	}

	Register(-1001, "Post is locked")
	if got := Text(-1001); got != "Post is locked" {
		t.Errorf("Text(custom) = %q", got)
	}
}

func TestToHTTPStatus(t *testing.T) {
	tests := map[int]int{
		OK:        http.StatusOK,
		CSRFErr:   http.StatusForbidden,
		NotFound:  http.StatusNotFound,
		ServerErr: http.StatusInternalServerError,
		-9999:     http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := ToHTTPStatus(code); got != want {
			t.Errorf("ToHTTPStatus(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestFieldMessages(t *testing.T) {
	if got := FieldIsRequired("text"); got != "text required" {
		t.Errorf("FieldIsRequired() = %q", got)
	}
	if got := FieldIsRequired(); got != "required" {
		t.Errorf("FieldIsRequired() = %q", got)
	}
	if got := InvalidChoice(""); got != "invalid choice" {
		t.Errorf("InvalidChoice() = %q", got)
	}
}
