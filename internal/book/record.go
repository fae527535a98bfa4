package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record holds one contact: a validated immutable name, an ordered list of
// phone numbers and an optional birthday.
//
// Phones are deliberately NOT deduplicated: the same number may appear
// several times, and edits/removals always target the first match.
type Record struct {
	name     string
	phones   []string
	birthday time.Time
	hasBday  bool
}

// NewRecord validates the name and returns an empty record for it.
func NewRecord(name string) (*Record, error) {
	n, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the validated contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the phone list in insertion order.
func (r *Record) Phones() []string {
	return r.phones
}

// AddPhone validates and appends a phone number. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := ValidatePhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to oldPhone with newPhone, in
// place. A missing old phone is a silent no-op, not an error; callers rely
// on this legacy behavior.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := ValidatePhone(newPhone)
	if err != nil {
		return err
	}
	for i, v := range r.phones {
		if v == oldPhone {
			r.phones[i] = p
			return nil
		}
	}
	return nil
}

// FindPhone returns the phone equal to value, or "" and false.
func (r *Record) FindPhone(value string) (string, bool) {
	for _, v := range r.phones {
		if v == value {
			return v, true
		}
	}
	return "", false
}

// RemovePhone deletes the first phone equal to value. Silent no-op if absent.
func (r *Record) RemovePhone(value string) {
	for i, v := range r.phones {
		if v == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// SetBirthday parses and stores the birthday, overwriting any previous one.
func (r *Record) SetBirthday(s string) error {
	t, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = t
	r.hasBday = true
	return nil
}

// SetBirthdayDate stores an already-parsed birthday. Used by importers that
// read dates in foreign formats (vCard BDAY).
func (r *Record) SetBirthdayDate(t time.Time) {
	r.birthday = t
	r.hasBday = true
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (time.Time, bool) {
	return r.birthday, r.hasBday
}

// ShowBirthday renders the birthday as DD.MM.YYYY, or the fixed
// "not set" sentinel.
func (r *Record) ShowBirthday() string {
	if !r.hasBday {
		return config.MsgBirthdayUnset
	}
	return FormatBirthday(r.birthday)
}

// String renders the record for the "all" listing.
func (r *Record) String() string {
	suffix := ""
	if r.hasBday {
		suffix = fmt.Sprintf(config.FormatRecordBirthday, r.ShowBirthday())
	}
	return fmt.Sprintf(config.FormatRecord, r.name, strings.Join(r.phones, config.PhoneSeparator), suffix)
}
