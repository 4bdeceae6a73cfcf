// Package ical renders forecast events as an iCalendar document consumable
// by calendar applications (RFC 5545 subset, all-day events only).
package ical

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jmacal/internal/forecast"
)

const (
	prodID        = "-//JMA Weather Gen//EN"
	calName       = "JMA Forecast"
	calTimezone   = "Asia/Tokyo"
	stampLayout   = "20060102T150405Z"
	dtStartLayout = "20060102"
)

// Render produces one VCALENDAR document with one all-day VEVENT per input
// event, preserving input order. Every line, including the one before the
// footer, is CRLF-terminated. Each VEVENT gets a fresh random UID; the
// DTSTAMP is captured once for the whole document.
func Render(events []forecast.Event) string {
	stamp := time.Now().UTC().Format(stampLayout)

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:"+calName)
	writeLine(&b, "X-WR-TIMEZONE:"+calTimezone)

	for _, ev := range events {
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+uuid.NewString())
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "DTSTART;VALUE=DATE:"+ev.Date.Format(dtStartLayout))
		writeLine(&b, "SUMMARY:"+escapeText(ev.Summary))
		writeLine(&b, "DESCRIPTION:"+escapeText(ev.Description))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escapeText applies RFC 5545 TEXT escaping so multi-line descriptions stay
// on one content line.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
