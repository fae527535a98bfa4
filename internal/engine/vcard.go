// Package engine converts the address book to and from interchange formats:
// vCard for contact data, iCalendar for the birthday event feed.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// vCard BDAY layouts accepted on import.
var bdayLayouts = []string{
	config.DateFormatVCard,
	"20060102",
	time.RFC3339,
}

// ExportVCard writes every contact as a vCard 4.0 card, in name order.
// It returns the number of cards written.
func ExportVCard(w io.Writer, b *book.AddressBook) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for _, name := range b.Names() {
		rec := b.Find(name)

		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name())
		for _, p := range rec.Phones() {
			card.Add(config.VCardTEL, &vcard.Field{Value: p})
		}
		if bday, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, bday.Format(config.DateFormatVCard))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return count, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
	)
	return count, nil
}

// ImportVCard merges a vCard stream into the book and returns the number of
// contacts imported. Recovery is best effort, mirroring feed reality:
// malformed cards, non-alphabetic names, bad phones and unparsable BDAY
// values are logged and skipped rather than aborting the whole import.
func ImportVCard(r io.Reader, b *book.AddressBook) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	dec := vcard.NewDecoder(r)
	count := 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured).
		name := card.Value(config.VCardFN)
		if name == "" {
			name = card.Value(config.VCardN)
		}

		msg, err := b.AddContact(name, "")
		if err != nil {
			log.Warn(config.MsgSkippedCard,
				config.LogKeyName, name,
				config.LogKeyError, err,
			)
			continue
		}
		if msg == config.MsgContactAdded {
			count++
		}
		rec := b.Find(name)

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Value(config.VCardBDAY); bday != "" {
			if t, err := parseVCardDate(bday); err == nil {
				rec.SetBirthdayDate(t)
			} else {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			}
		}
	}

	log.Info(config.MsgImportDone, config.LogKeyCount, count)
	return count, nil
}

// parseVCardDate tries the supported full-date BDAY layouts.
func parseVCardDate(value string) (time.Time, error) {
	for _, layout := range bdayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: %q", config.MsgSkippedDate, value)
}
