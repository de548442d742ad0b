package utils

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"strong", "Str0ng!pass", ""},
		{"short", "S0!a", "at least 8 characters"},
		{"no upper", "str0ng!pass", "an uppercase letter"},
		{"no number", "Strong!pass", "a number"},
		{"no symbol", "Str0ngpass", "a special symbol"},
		{"too long", "Aa1!" + strings.Repeat("x", 70), "at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "Str0ng!pass") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected mismatch for a different password")
	}
}
