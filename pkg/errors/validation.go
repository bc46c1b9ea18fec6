package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePartName validates an LDraw part or submodel reference for safety.
// LDraw references legitimately use backslash subdirectory prefixes
// ("s\4744s01.dat"), so backslashes are allowed; traversal sequences are not.
func ValidatePartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "part name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "part name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "part name contains control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "part name contains traversal sequence: %q", name)
	}
	if strings.Contains(name, "//") {
		return New(ErrCodeInvalidInput, "part name contains invalid characters: %q", name)
	}

	return nil
}

// colorCodeRegex matches LDraw colour codes: a decimal index or a direct
// colour of the form 0x2RRGGBB.
var colorCodeRegex = regexp.MustCompile(`^(\d+|0x2[0-9A-Fa-f]{6})$`)

// ValidateColorCode validates an LDraw colour code.
func ValidateColorCode(code string) error {
	if code == "" {
		return New(ErrCodeInvalidInput, "colour code cannot be empty")
	}
	if !colorCodeRegex.MatchString(code) {
		return New(ErrCodeInvalidInput, "invalid colour code: %q", code)
	}
	return nil
}

// sessionIDRegex matches preview session identifiers (UUID shaped).
var sessionIDRegex = regexp.MustCompile(`^[0-9a-fA-F-]{8,64}$`)

// ValidateSessionID validates a preview session identifier before it is
// used to build a storage path.
func ValidateSessionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "session id cannot be empty")
	}
	if !sessionIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid session id: %q", id)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
