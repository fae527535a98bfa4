// Package book holds the in-memory contact store: validated records keyed
// by name, with phone and birthday operations and the upcoming-birthdays
// query. Nothing here touches disk or network; the store lives and dies
// with the process.
package book

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/schedule"
)

// AddressBook owns every contact record, keyed by validated name.
// It is single-caller by design: embed behind an external lock if shared.
type AddressBook struct {
	records map[string]*Record
}

// Greeting is one row of the upcoming-birthdays query. Birthday carries the
// occurrence date (DD.MM.YYYY), CongratulationDate the weekend-shifted date
// (YYYY.MM.DD).
type Greeting struct {
	Name               string
	Birthday           string
	CongratulationDate string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Len reports the number of stored contacts.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Add inserts a record, replacing any record with the same name.
func (b *AddressBook) Add(r *Record) {
	b.records[r.Name()] = r
}

// Find returns the record for name, or nil.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record for name. A missing name is a NotFoundError,
// keeping the shell's message contract uniform with the other lookups.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{Msg: config.ErrContactNotFound}
	}
	delete(b.records, name)
	return nil
}

// Names returns all contact names sorted lexicographically. Listing and
// export iterate through this to stay deterministic.
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for n := range b.records {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddContact is find-or-create: a new name creates a record, an existing
// one is updated. The record is committed to the book BEFORE the phone is
// validated, so an invalid phone still leaves the contact created. This
// partial commit is long-standing observable behavior; do not reorder.
func (b *AddressBook) AddContact(name, phone string) (string, error) {
	rec := b.Find(name)
	msg := config.MsgContactUpdated
	if rec == nil {
		var err error
		rec, err = NewRecord(name)
		if err != nil {
			return "", err
		}
		b.Add(rec)
		msg = config.MsgContactAdded
	}
	if phone != "" {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
	}
	return msg, nil
}

// ChangeContact replaces oldPhone with newPhone on the named record.
// The record must exist; a non-matching old phone is a silent no-op and
// still reports success (inherited quirk, see Record.EditPhone).
func (b *AddressBook) ChangeContact(name, oldPhone, newPhone string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", &NotFoundError{Msg: config.ErrContactNotFound}
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return config.MsgPhoneUpdated, nil
}

// ShowPhone returns the named record's phones joined by "; ".
func (b *AddressBook) ShowPhone(name string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", &NotFoundError{Msg: config.ErrContactNotFound}
	}
	return strings.Join(rec.Phones(), config.PhoneSeparator), nil
}

// ShowAll renders every record, one per line, or the "no contacts" sentinel.
func (b *AddressBook) ShowAll() string {
	if len(b.records) == 0 {
		return config.MsgNoContacts
	}
	lines := make([]string, 0, len(b.records))
	for _, name := range b.Names() {
		lines = append(lines, b.records[name].String())
	}
	return strings.Join(lines, config.LineSeparator)
}

// AddBirthday parses and sets the birthday on the named record.
func (b *AddressBook) AddBirthday(name, date string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", &NotFoundError{Msg: config.ErrContactNotFound}
	}
	if err := rec.SetBirthday(date); err != nil {
		return "", err
	}
	return config.MsgBirthdayAdded, nil
}

// ShowBirthday returns the named record's birthday display string.
func (b *AddressBook) ShowBirthday(name string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", &NotFoundError{Msg: config.ErrContactNotFound}
	}
	return rec.ShowBirthday(), nil
}

// UpcomingBirthdays collects every contact whose next birthday occurrence
// falls within the inclusive 0-7 day window from today. Date math is
// delegated to the schedule package. Order across records follows map
// iteration and is not guaranteed stable.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Greeting {
	var upcoming []Greeting
	for _, rec := range b.records {
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}
		occ := schedule.NextOccurrence(today, bday)
		if !schedule.InWindow(today, occ) {
			continue
		}
		congrats := schedule.CongratulationDate(occ)
		upcoming = append(upcoming, Greeting{
			Name:               rec.Name(),
			Birthday:           occ.Format(config.DateFormatBirthday),
			CongratulationDate: congrats.Format(config.DateFormatCongrats),
		})
	}
	return upcoming
}

// UpcomingReport renders the upcoming-birthdays query as the fixed
// human-readable report consumed by the shell.
func (b *AddressBook) UpcomingReport(today time.Time) string {
	upcoming := b.UpcomingBirthdays(today)
	if len(upcoming) == 0 {
		return config.MsgNoUpcoming
	}
	lines := make([]string, 0, len(upcoming))
	for _, g := range upcoming {
		lines = append(lines, fmt.Sprintf(config.FormatGreetingLine, g.Name, g.Birthday, g.CongratulationDate))
	}
	return strings.Join(lines, config.LineSeparator)
}
