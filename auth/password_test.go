package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		username string
		wantErr  string
	}{
		{"valid", "correct-horse-battery", "layla", ""},
		{"exactly eight chars", "a1b2c3d4", "layla", ""},
		{"too short", "seven77", "layla", "too short"},
		{"whitespace not trimmed", " a b c ", "layla", "too short"},
		{"same as username", "laylalayla", "laylalayla", "too similar"},
		{"contains username", "xx-layla-xx", "layla", "too similar"},
		{"username contains password", "layla2024", "my-layla2024-shop", "too similar"},
		{"case-insensitive similarity", "XXLAYLAXX", "layla", "too similar"},
		{"common password", "password123", "layla", "too common"},
		{"common password upper", "QWERTYUIOP", "layla", "too common"},
		{"entirely numeric", "1029384756", "layla", "entirely numeric"},
		{"numeric with letter passes", "1029384756a", "layla", ""},
		{"empty username skips similarity", "standalone-pass", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
