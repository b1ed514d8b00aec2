package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"123e4567-e89b-12d3-a456-42661417400",  // too short
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-15"); !ok {
		t.Error("IsValidDate(2026-03-15) = false, want true")
	}
	for _, s := range []string{"15-03-2026", "2026/03/15", "2026-13-01", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidNID(t *testing.T) {
	valid := []string{"0123456789", "0123456789012", "01234567890123456"}
	invalid := []string{"12345", "123456789012", "abcdefghij", ""}
	for _, nid := range valid {
		if !IsValidNID(nid) {
			t.Errorf("IsValidNID(%q) = false, want true", nid)
		}
	}
	for _, nid := range invalid {
		if IsValidNID(nid) {
			t.Errorf("IsValidNID(%q) = true, want false", nid)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	valid := []string{"https://example.com/proof.png", "http://cdn.local/x"}
	invalid := []string{"ftp://example.com/x", "example.com/x", "/relative/path", ""}
	for _, u := range valid {
		if !IsValidURL(u) {
			t.Errorf("IsValidURL(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidURL(u) {
			t.Errorf("IsValidURL(%q) = true, want false", u)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be positive"},
		{Field: "due_date", Message: "is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() len = %d, want 2", len(m))
	}
	if m["amount"] != "must be positive" {
		t.Errorf("ToMap()[amount] = %q", m["amount"])
	}
	if errs.Error() != "amount: must be positive; due_date: is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
