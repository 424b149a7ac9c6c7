package handlers

import (
	"regexp"
	"strings"
	"time"
)

// Validation limits.
const (
	MaxEmailLength = 254
	MaxPhoneLength = 32
	MaxColorLength = 32
	MinYear        = 1900
)

// platePattern is the fixed plate format: three uppercase letters, a dash,
// three digits (e.g. "ABC-123").
var platePattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)

// NormalizePlate trims and uppercases a plate for comparison and storage.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidPlate reports whether plate (already normalized) matches the fixed format.
func ValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// ValidYear reports whether year falls in the accepted range. Next year's
// models are already on sale, so the upper bound is current year + 1.
func ValidYear(year int) bool {
	return year >= MinYear && year <= time.Now().Year()+1
}

// SanitizeEmail trims and lowercases email; returns empty if invalid length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizePhone trims a phone number; returns empty if over max length.
func SanitizePhone(phone string) string {
	s := strings.TrimSpace(phone)
	if len(s) > MaxPhoneLength {
		return ""
	}
	return s
}
