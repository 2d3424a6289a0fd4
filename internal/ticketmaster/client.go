package ticketmaster

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pfrederiksen/club-nights/internal/event"
	"github.com/pfrederiksen/club-nights/internal/source"
)

const (
	defaultBaseURL = "https://app.ticketmaster.com"

	// DefaultMaxPages caps how many result pages are fetched per artist.
	DefaultMaxPages = 4

	// PageSize is the largest page the Discovery API allows.
	PageSize = 100

	// Timeout is the per-request HTTP timeout.
	Timeout = 20 * time.Second

	// classification restricts searches to electronic music events.
	classification = "Electronic"
)

// Config holds the settings for a Discovery API client.
type Config struct {
	// APIKey is the Discovery API key (required).
	APIKey string

	// BaseURL overrides the public API host. Tests point it at a local
	// server; leave empty for the real API.
	BaseURL string

	// MaxPages caps pagination per artist. Zero means DefaultMaxPages.
	MaxPages int

	// Country optionally restricts results to an ISO country code.
	Country string

	// City optionally restricts results to a city name.
	City string
}

// Client queries the Ticketmaster Discovery API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a Discovery API client from the given configuration.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Name returns the source name used in logs and records.
func (c *Client) Name() string {
	return string(event.SourceTicketmaster)
}

// eventsResponse is the subset of the Discovery search response the
// client cares about.
type eventsResponse struct {
	Embedded struct {
		Events []apiEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		TotalPages int `json:"totalPages"`
	} `json:"page"`
}

type apiEvent struct {
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			DateTime string `json:"dateTime"`
		} `json:"start"`
	} `json:"dates"`
	Embedded struct {
		Venues      []apiVenue      `json:"venues"`
		Attractions []apiAttraction `json:"attractions"`
	} `json:"_embedded"`
}

type apiVenue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	Country struct {
		CountryCode string `json:"countryCode"`
	} `json:"country"`
}

type apiAttraction struct {
	Name string `json:"name"`
}

// FetchEvents pages through the Discovery search results for an artist.
// Any failed page request aborts the whole fetch for this artist; the
// caller decides what to do with the partial run.
func (c *Client) FetchEvents(artist string, win source.Window) ([]event.Record, error) {
	records := make([]event.Record, 0)

	for page := 0; page < c.cfg.MaxPages; page++ {
		resp, err := c.fetchPage(artist, win, page)
		if err != nil {
			return nil, err
		}

		for _, ev := range resp.Embedded.Events {
			records = append(records, ev.toRecord(artist))
		}

		if page+1 >= resp.Page.TotalPages {
			break
		}
	}

	return records, nil
}

// fetchPage issues one blocking search request for the given page index.
func (c *Client) fetchPage(artist string, win source.Window, page int) (*eventsResponse, error) {
	params := url.Values{}
	params.Set("apikey", c.cfg.APIKey)
	params.Set("keyword", artist)
	params.Set("classificationName", classification)
	params.Set("size", strconv.Itoa(PageSize))
	params.Set("sort", "date,asc")
	params.Set("page", strconv.Itoa(page))
	if c.cfg.Country != "" {
		params.Set("countryCode", c.cfg.Country)
	}
	if c.cfg.City != "" {
		params.Set("city", c.cfg.City)
	}
	if !win.From.IsZero() {
		params.Set("startDateTime", win.From.Format("2006-01-02")+"T00:00:00Z")
	}
	if !win.To.IsZero() {
		params.Set("endDateTime", win.To.Format("2006-01-02")+"T23:59:59Z")
	}

	reqURL := fmt.Sprintf("%s/discovery/v2/events.json?%s", c.cfg.BaseURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page %d: unexpected status code: %d", page, resp.StatusCode)
	}

	var decoded eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("parsing page %d: %w", page, err)
	}

	return &decoded, nil
}

// toRecord maps one upstream event onto the common record. Only the
// first listed venue is used; lineup is every attraction name joined
// with ", ".
func (e apiEvent) toRecord(artist string) event.Record {
	rec := event.Record{
		Source: event.SourceTicketmaster,
		Artist: artist,
		Date:   e.Dates.Start.DateTime,
		URL:    e.URL,
	}

	if len(e.Embedded.Venues) > 0 {
		v := e.Embedded.Venues[0]
		rec.Venue = v.Name
		rec.City = event.JoinNonEmpty(", ", v.City.Name, v.Country.CountryCode)
	}

	names := make([]string, 0, len(e.Embedded.Attractions))
	for _, a := range e.Embedded.Attractions {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	rec.Lineup = event.JoinNonEmpty(", ", names...)

	return rec
}
