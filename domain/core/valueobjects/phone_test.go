package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain digits", "74951234567", false},
		{"international", "+7 495 123-45-67", false},
		{"with parentheses", "+7 (495) 123-45-67", false},
		{"empty", "", true},
		{"too short", "12345", true},
		{"too many digits", "1234567890123456", true},
		{"letters", "call-me-maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, phone.String())
		})
	}
}

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with digits", "alice42", false},
		{"with underscore", "alice_smith", false},
		{"starts with digit", "42alice", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 256), true},
		{"starts with underscore", "_alice", true},
		{"contains space", "alice smith", true},
		{"contains dash", "alice-smith", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := NewUsername(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, username.String())
		})
	}
}
