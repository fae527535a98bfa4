package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contacts/internal/config"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple name", "Anna", true},
		{"Unicode letters", "Élodie", true},
		{"Cyrillic letters", "Олена", true},
		{"Empty", "", false},
		{"Contains digit", "Anna1", false},
		{"Contains space", "Anna Maria", false},
		{"Contains symbol", "Anna-Maria", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, got)
			} else {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, config.ErrNameLetters, err.Error())
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Ten digits", "1234567890", true},
		{"All zeros", "0000000000", true},
		{"Too short", "123456789", false},
		{"Too long", "12345678901", false},
		{"Contains letter", "12345678a0", false},
		{"Contains separator", "123-456-78", false},
		{"Empty", "", false},
		{"Non-ASCII digits", "١٢٣٤٥٦٧٨٩٠", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, got)
			} else {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, config.ErrPhoneDigits, err.Error())
			}
		})
	}
}

func TestParseBirthday(t *testing.T) {
	t.Run("Canonical round-trip", func(t *testing.T) {
		input := "05.03.1987"
		parsed, err := ParseBirthday(input)
		require.NoError(t, err)
		assert.Equal(t, input, FormatBirthday(parsed))
	})

	t.Run("Valid leap day", func(t *testing.T) {
		parsed, err := ParseBirthday("29.02.2000")
		require.NoError(t, err)
		assert.Equal(t, time.February, parsed.Month())
		assert.Equal(t, 29, parsed.Day())
	})

	invalid := []struct {
		name  string
		input string
	}{
		{"Fictitious date", "30.02.2024"},
		{"Leap day in non-leap year", "29.02.2023"},
		{"Wrong separator", "12-06-1990"},
		{"ISO order", "1990.06.12"},
		{"Garbage", "tomorrow"},
		{"Empty", ""},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBirthday(tt.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, config.ErrDateFormat, err.Error())
		})
	}
}
