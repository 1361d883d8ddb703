package util

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"News", "news"},
		{"Hello, World!", "hello-world"},
		{"  Cats & Dogs  ", "cats-and-dogs"},
		{strings.Repeat("a", 80), strings.Repeat("a", MaxSlugLength)},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSlug(t *testing.T) {
	valid := []string{"news", "my_group-1", "ABC"}
	invalid := []string{"", "with space", "ünï", "a/b", strings.Repeat("a", MaxSlugLength+1)}

	for _, s := range valid {
		if !IsSlug(s) {
			t.Errorf("IsSlug(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsSlug(s) {
			t.Errorf("IsSlug(%q) = true, want false", s)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 15, "short"},
		{"exactly fifteen", 15, "exactly fifteen"},
		{"a much longer post text", 15, "a much longer p"},
		{"привет мир", 6, "привет"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPassword(t *testing.T) {
	hash, err := EncryptPassword("correct horse")
	if err != nil {
		t.Fatalf("EncryptPassword() error = %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("password stored in clear")
	}
	if !ComparePassword(hash, "correct horse") {
		t.Errorf("ComparePassword() = false for the right password")
	}
	if ComparePassword(hash, "wrong") {
		t.Errorf("ComparePassword() = true for a wrong password")
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"group", "new"}, "new") {
		t.Errorf("Contains() = false, want true")
	}
	if Contains(nil, "x") {
		t.Errorf("Contains(nil) = true")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseID(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := UintToString(7); got != "7" {
		t.Errorf("UintToString(7) = %q", got)
	}
}
