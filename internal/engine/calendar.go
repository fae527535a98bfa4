package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// BuildCalendar renders the book's birthdays as an iCalendar feed.
//
// Events are generated for the previous, current and next year so calendar
// clients can scroll without an immediate refresh, guarded so nobody gets
// an event before their birth year. Birthdays are local calendar dates:
// 'now' keeps its location for event dates, only DTSTAMP is stamped in UTC.
func BuildCalendar(b *book.AddressBook, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ total, withBday int }{}

	for _, name := range b.Names() {
		rec := b.Find(name)
		stats.total++

		bday, ok := rec.Birthday()
		if !ok {
			continue
		}
		stats.withBday++

		// Deterministic UID base so feeds stay stable across refreshes.
		input := fmt.Sprintf(config.FormatHashInput, rec.Name(), bday.Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		for _, e := range birthdayEvents(rec.Name(), bday, now, uidBase) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	log := slog.With(config.LogKeyComponent, config.CompEngine)

	// An empty VCALENDAR body is invalid; serve the stub instead so clients
	// never flag the feed.
	if len(cal.Children) == 0 {
		log.Info(config.MsgGenSuccess,
			slog.Group(config.LogKeyStats,
				slog.Int(config.LogKeyTotal, stats.total),
				slog.Int(config.LogKeyFound, stats.withBday),
			),
		)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	log.Info(config.MsgGenSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
	)
	return buf.Bytes(), nil
}

// birthdayEvents generates the per-year VEVENTs for one contact.
func birthdayEvents(name string, birthDate, now time.Time, uidBase string) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatEventSummary, name))

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years,
		// matching the scheduler's leapling policy.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}
