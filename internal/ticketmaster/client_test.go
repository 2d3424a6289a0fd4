package ticketmaster

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pfrederiksen/club-nights/internal/source"
)

const singleEventPage = `{
	"_embedded": {
		"events": [
			{
				"url": "https://www.ticketmaster.com/event/123",
				"dates": {"start": {"dateTime": "2025-01-17T23:00:00Z"}},
				"_embedded": {
					"venues": [
						{
							"name": "The Warehouse",
							"city": {"name": "Leeds"},
							"country": {"countryCode": "GB"}
						}
					],
					"attractions": [
						{"name": "Bontan"},
						{"name": "Eats Everything"}
					]
				}
			}
		]
	},
	"page": {"totalPages": 1}
}`

func TestFetchEvents_DecodesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("keyword") != "Bontan" {
			t.Errorf("expected keyword Bontan, got %q", q.Get("keyword"))
		}
		if q.Get("classificationName") != "Electronic" {
			t.Errorf("expected Electronic classification, got %q", q.Get("classificationName"))
		}
		if q.Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %q", q.Get("apikey"))
		}
		if q.Get("startDateTime") != "2025-01-01T00:00:00Z" {
			t.Errorf("unexpected startDateTime %q", q.Get("startDateTime"))
		}
		if q.Get("endDateTime") != "2025-01-31T23:59:59Z" {
			t.Errorf("unexpected endDateTime %q", q.Get("endDateTime"))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, singleEventPage)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	win := source.Window{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	records, err := client.FetchEvents("Bontan", win)
	if err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Source != "Ticketmaster" {
		t.Errorf("expected source Ticketmaster, got %q", rec.Source)
	}
	if rec.Artist != "Bontan" {
		t.Errorf("expected artist Bontan, got %q", rec.Artist)
	}
	if rec.Date != "2025-01-17T23:00:00Z" {
		t.Errorf("unexpected date %q", rec.Date)
	}
	if rec.Venue != "The Warehouse" {
		t.Errorf("unexpected venue %q", rec.Venue)
	}
	if rec.City != "Leeds, GB" {
		t.Errorf("unexpected city %q", rec.City)
	}
	if rec.Lineup != "Bontan, Eats Everything" {
		t.Errorf("unexpected lineup %q", rec.Lineup)
	}
	if rec.URL != "https://www.ticketmaster.com/event/123" {
		t.Errorf("unexpected url %q", rec.URL)
	}
}

func TestFetchEvents_MissingFieldsDefaultToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"_embedded": {"events": [{"dates": {"start": {}}}]},
			"page": {"totalPages": 1}
		}`)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	records, err := client.FetchEvents("Bontan", source.Window{})
	if err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Date != "" || rec.Venue != "" || rec.City != "" || rec.Lineup != "" || rec.URL != "" {
		t.Errorf("expected empty optional fields, got %+v", rec)
	}
	if rec.Source != "Ticketmaster" || rec.Artist != "Bontan" {
		t.Errorf("source and artist must always be populated, got %+v", rec)
	}
}

func TestFetchEvents_MaxPagesCapsRequests(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		// Report many more pages than the cap allows.
		fmt.Fprint(w, `{"_embedded": {"events": []}, "page": {"totalPages": 10}}`)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL, MaxPages: 2})

	if _, err := client.FetchEvents("Bontan", source.Window{}); err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}

	if requests != 2 {
		t.Errorf("expected exactly 2 page requests, got %d", requests)
	}
}

func TestFetchEvents_StopsAtReportedTotalPages(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"_embedded": {"events": []}, "page": {"totalPages": 1}}`)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	if _, err := client.FetchEvents("Bontan", source.Window{}); err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}

	if requests != 1 {
		t.Errorf("expected 1 page request, got %d", requests)
	}
}

func TestFetchEvents_HTTPErrorAbortsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	if _, err := client.FetchEvents("Bontan", source.Window{}); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
