package errors

import (
	"testing"
)

func TestValidatePartName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "3001.dat", false},
		{"valid subdirectory", "s\\4744s01.dat", false},
		{"valid submodel", "chassis.ldr", false},
		{"valid with spaces", "left wing.ldr", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar.dat", true},
		{"path traversal //", "foo//bar.dat", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePartName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid index", "16", false},
		{"valid zero", "0", false},
		{"valid large index", "10220", false},
		{"valid direct colour", "0x2FF8800", false},

		{"empty", "", true},
		{"negative", "-1", true},
		{"word", "Black", true},
		{"bad direct colour", "0x3FF8800", true},
		{"short direct colour", "0x2FF88", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "9b2c6f7e-03a1-4a57-9fd2-8c31f0a4b7de", false},
		{"valid hex", "deadbeefcafe", false},

		{"empty", "", true},
		{"path separator", "a/b", true},
		{"traversal", "..", true},
		{"too short", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid http", "http://example.com", false},
		{"valid https", "https://example.com/codes.txt", false},

		{"empty", "", true},
		{"no scheme", "example.com", true},
		{"file scheme", "file:///etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
