package ical

import (
	"strings"
	"testing"

	"github.com/pfrederiksen/club-nights/internal/event"
)

func TestGenerate(t *testing.T) {
	records := []event.Record{
		{
			Source: event.SourceTicketmaster,
			Artist: "Bontan",
			Date:   "2025-01-17T23:00:00Z",
			Venue:  "The Warehouse",
			City:   "Leeds, GB",
			Lineup: "Bontan, Eats Everything",
			URL:    "https://www.ticketmaster.com/event/123",
		},
		{
			Source: event.SourceBandsintown,
			Artist: "Eats Everything",
			Date:   "TBA",
			Venue:  "Motion",
		},
	}

	ics := Generate(records)

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") {
		t.Error("expected calendar to open with BEGIN:VCALENDAR")
	}
	if !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Error("expected calendar to close with END:VCALENDAR")
	}

	// One entry: the TBA record has no parseable start time.
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("expected 1 VEVENT, got %d", got)
	}

	if !strings.Contains(ics, "DTSTART:20250117T230000Z") {
		t.Error("expected DTSTART from the parsed event date")
	}
	if !strings.Contains(ics, "DTEND:20250118T050000Z") {
		t.Error("expected DTEND six hours after the start")
	}
	if !strings.Contains(ics, "SUMMARY:Bontan @ The Warehouse") {
		t.Error("expected summary with artist and venue")
	}
	if !strings.Contains(ics, "LOCATION:The Warehouse\\, Leeds\\, GB") {
		t.Error("expected escaped location line")
	}
	if !strings.Contains(ics, "URL:https://www.ticketmaster.com/event/123") {
		t.Error("expected URL line")
	}
	if !strings.Contains(ics, "Lineup: Bontan\\, Eats Everything") {
		t.Error("expected escaped lineup in description")
	}
}

func TestGenerate_EmptyListStillValid(t *testing.T) {
	ics := Generate(nil)

	if !strings.Contains(ics, "BEGIN:VCALENDAR") || !strings.Contains(ics, "END:VCALENDAR") {
		t.Errorf("expected a valid empty calendar, got %q", ics)
	}
	if strings.Contains(ics, "VEVENT") {
		t.Error("expected no VEVENT entries")
	}
}

func TestUID_Deterministic(t *testing.T) {
	rec := event.Record{Source: event.SourceTicketmaster, Artist: "Bontan", Date: "2025-01-17", Venue: "Fabric Club"}

	if uid(rec) != uid(rec) {
		t.Error("expected identical records to share a UID")
	}

	other := rec
	other.Venue = "Phonox"
	if uid(rec) == uid(other) {
		t.Error("expected different venues to produce different UIDs")
	}
}
