// Package bandsintown fetches an artist's upcoming events from the
// Bandsintown public API.
//
// Unlike Ticketmaster the endpoint is not paginated: one request returns
// everything. The API also reports errors (unknown artist, bad app id)
// as JSON objects with a 200 status, so the body is only treated as
// event data when it is a top-level JSON array; any other shape yields
// zero records.
package bandsintown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pfrederiksen/club-nights/internal/event"
	"github.com/pfrederiksen/club-nights/internal/source"
)

const (
	defaultBaseURL = "https://rest.bandsintown.com"

	// Timeout is the per-request HTTP timeout.
	Timeout = 20 * time.Second
)

// Client queries the Bandsintown artist events API.
type Client struct {
	appID      string
	baseURL    string
	httpClient *http.Client
}

// New creates a Bandsintown client for the given app ID.
func New(appID string) *Client {
	return &Client{
		appID:   appID,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Name returns the source name used in logs and records.
func (c *Client) Name() string {
	return string(event.SourceBandsintown)
}

type apiEvent struct {
	DateTime string   `json:"datetime"`
	URL      string   `json:"url"`
	Lineup   []string `json:"lineup"`
	Venue    struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"venue"`
}

// FetchEvents issues one blocking request for the artist's events.
// Date bounds are only sent when the window has both; the API takes the
// range as a single "from,to" parameter.
func (c *Client) FetchEvents(artist string, win source.Window) ([]event.Record, error) {
	params := url.Values{}
	params.Set("app_id", c.appID)
	if !win.From.IsZero() && !win.To.IsZero() {
		params.Set("date", win.From.Format("2006-01-02")+","+win.To.Format("2006-01-02"))
	}

	reqURL := fmt.Sprintf("%s/artists/%s/events?%s", c.baseURL, url.PathEscape(artist), params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	// Anything but a top-level array carries no event data.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}

	var items []apiEvent
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	records := make([]event.Record, 0, len(items))
	for _, it := range items {
		records = append(records, it.toRecord(artist))
	}

	return records, nil
}

// toRecord maps one upstream event onto the common record with empty
// strings for anything the listing omits.
func (e apiEvent) toRecord(artist string) event.Record {
	return event.Record{
		Source: event.SourceBandsintown,
		Artist: artist,
		Date:   e.DateTime,
		Venue:  e.Venue.Name,
		City:   event.JoinNonEmpty(", ", e.Venue.City, e.Venue.Country),
		Lineup: event.JoinNonEmpty(", ", e.Lineup...),
		URL:    e.URL,
	}
}
