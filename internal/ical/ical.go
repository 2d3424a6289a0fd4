// Package ical renders aggregated events as a single iCalendar file so
// club nights can be dropped into a calendar app.
package ical

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/club-nights/internal/event"
)

// nightLength is the assumed duration of a club night when the listing
// only carries a start time.
const nightLength = 6 * time.Hour

// Generate renders the records as one VCALENDAR with a VEVENT per
// record. Records whose date cannot be parsed are omitted: a calendar
// entry needs a concrete start time.
func Generate(records []event.Record) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//club-nights//club-nights//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, rec := range records {
		start := event.ParseDate(rec.Date)
		if start.IsZero() {
			continue
		}
		writeEvent(&ics, rec, start, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeEvent(ics *strings.Builder, rec event.Record, start, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@club-nights\r\n", uid(rec)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(nightLength))))

	summary := rec.Artist
	if rec.Venue != "" {
		summary = fmt.Sprintf("%s @ %s", rec.Artist, rec.Venue)
	}
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("Source: %s", rec.Source)
	if rec.Lineup != "" {
		description = fmt.Sprintf("Lineup: %s\n%s", rec.Lineup, description)
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	location := event.JoinNonEmpty(", ", rec.Venue, rec.City)
	if location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
	}

	if rec.URL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.URL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// uid derives a deterministic identifier from the fields that make a
// record distinct, so re-importing a regenerated file updates entries
// instead of duplicating them.
func uid(rec event.Record) string {
	h := sha1.New()
	h.Write([]byte(strings.Join([]string{string(rec.Source), rec.Artist, rec.Date, rec.Venue}, "|")))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// formatICSTime formats a time.Time as an iCalendar datetime string.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
