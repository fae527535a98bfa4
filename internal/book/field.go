package book

import (
	"time"
	"unicode"

	"github.com/tartampluch/go-contacts/internal/config"
)

// ValidateName checks that a contact name is non-empty and entirely made of
// letters (Unicode categories L*).
func ValidateName(s string) (string, error) {
	if s == "" {
		return "", &ValidationError{Msg: config.ErrNameLetters}
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", &ValidationError{Msg: config.ErrNameLetters}
		}
	}
	return s, nil
}

// ValidatePhone checks that a phone number is exactly ten ASCII decimal
// digits, no separators.
func ValidatePhone(s string) (string, error) {
	if len(s) != config.PhoneLength {
		return "", &ValidationError{Msg: config.ErrPhoneDigits}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", &ValidationError{Msg: config.ErrPhoneDigits}
		}
	}
	return s, nil
}

// ParseBirthday parses a DD.MM.YYYY date. time.Parse rejects fictitious
// dates such as 30.02, which is exactly the calendar check we need.
func ParseBirthday(s string) (time.Time, error) {
	t, err := time.Parse(config.DateFormatBirthday, s)
	if err != nil {
		return time.Time{}, &ValidationError{Msg: config.ErrDateFormat}
	}
	return t, nil
}

// FormatBirthday renders a date in the canonical DD.MM.YYYY form.
func FormatBirthday(t time.Time) string {
	return t.Format(config.DateFormatBirthday)
}
