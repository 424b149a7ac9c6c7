package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePlate(t *testing.T) {
	cases := map[string]string{
		"abc-123":    "ABC-123",
		"  ABC-123 ": "ABC-123",
		"aBc-123":    "ABC-123",
	}
	for in, want := range cases {
		if got := NormalizePlate(in); got != want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidPlate(t *testing.T) {
	valid := []string{"ABC-123", "ZZZ-000"}
	invalid := []string{"", "abc-123", "AB-123", "ABCD-123", "ABC-12", "ABC-1234", "ABC123", "123-ABC", "ABC-12a"}
	for _, p := range valid {
		if !ValidPlate(p) {
			t.Errorf("ValidPlate(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if ValidPlate(p) {
			t.Errorf("ValidPlate(%q) = true, want false", p)
		}
	}
}

func TestValidYear(t *testing.T) {
	next := time.Now().Year() + 1
	if !ValidYear(MinYear) || !ValidYear(next) {
		t.Error("boundary years must be accepted")
	}
	if ValidYear(MinYear-1) || ValidYear(next+1) {
		t.Error("out-of-range years must be rejected")
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Errorf("got %q", got)
	}
	if got := SanitizeEmail(strings.Repeat("a", MaxEmailLength+1)); got != "" {
		t.Errorf("overlong email: got %q, want empty", got)
	}
}

func TestSanitizePhone(t *testing.T) {
	if got := SanitizePhone(" 555-1234 "); got != "555-1234" {
		t.Errorf("got %q", got)
	}
	if got := SanitizePhone(strings.Repeat("9", MaxPhoneLength+1)); got != "" {
		t.Errorf("overlong phone: got %q, want empty", got)
	}
}
