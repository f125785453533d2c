package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "a@x.com", false},
		{"valid email with subdomain", "driver@mail.hopmate.io", false},
		{"empty", "", true},
		{"missing at", "ax.com", true},
		{"missing domain dot", "a@xcom", true},
		{"spaces", "a b@x.com", true},
		{"double at", "a@@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Str0ng!pwd", ""},
		{"empty", "", "password is required"},
		{"too short", "S0!a", "at least 8 characters"},
		{"no digit", "Strong!pwd", "digit"},
		{"no lowercase", "STR0NG!PWD", "lowercase"},
		{"no uppercase", "str0ng!pwd", "uppercase"},
		{"no symbol", "Str0ngpwd", "non-alphanumeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseDateOfBirth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("adult", func(t *testing.T) {
		dob, err := ParseDateOfBirth("2000-01-01", now)
		require.NoError(t, err)
		assert.Equal(t, 2000, dob.Year())
	})

	t.Run("seventeen", func(t *testing.T) {
		_, err := ParseDateOfBirth("2008-01-01", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 18 years old")
	})

	t.Run("eighteenth birthday today", func(t *testing.T) {
		_, err := ParseDateOfBirth("2007-06-15", now)
		assert.NoError(t, err)
	})

	t.Run("eighteen tomorrow", func(t *testing.T) {
		_, err := ParseDateOfBirth("2007-06-16", now)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDateOfBirth("", now)
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := ParseDateOfBirth("01/06/2000", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("A B"))
	assert.Error(t, ValidateFullName(""))
	assert.Error(t, ValidateFullName("   "))
}
