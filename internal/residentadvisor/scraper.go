package residentadvisor

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/club-nights/internal/event"
	"github.com/pfrederiksen/club-nights/internal/source"
)

const (
	defaultBaseURL = "https://ra.co"
	UserAgent      = "club-nights-cli/1.0 (github.com/pfrederiksen/club-nights)"

	// Timeout is the per-request HTTP timeout.
	Timeout = 20 * time.Second
)

// isoDatePattern matches ISO dates like "2025-03-07" in card text.
var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Scraper fetches and parses a DJ's public listings page.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: defaultBaseURL,
	}
}

// Name returns the source name used in logs and records.
func (s *Scraper) Name() string {
	return string(event.SourceResidentAdvisor)
}

// FetchEvents fetches and parses the listings page for an artist.
// The site has no date-range query, so the window is ignored and the
// listing's native "upcoming" view is taken as-is.
func (s *Scraper) FetchEvents(artist string, _ source.Window) ([]event.Record, error) {
	listURL := fmt.Sprintf("%s/dj/%s/events", s.baseURL, slugify(artist))

	req, err := http.NewRequest("GET", listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseEvents(resp.Body, artist)
}

// parseEvents extracts events from the listings HTML. The markup shifts
// often, so extraction is defensive: cards are located by their
// /events/<id> links and the surrounding text is mined for the date and
// the "Venue, City" line.
func (s *Scraper) parseEvents(r io.Reader, artist string) ([]event.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	eventHref := regexp.MustCompile(`^/events/\d+`)

	records := make([]event.Record, 0)
	seen := make(map[string]bool)

	doc.Find("li").Each(func(i int, card *goquery.Selection) {
		link := card.Find("a[href]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			return eventHref.MatchString(href)
		}).First()
		if link.Length() == 0 {
			return
		}

		href, _ := link.Attr("href")
		if seen[href] {
			return
		}
		seen[href] = true

		rec := event.Record{
			Source: event.SourceResidentAdvisor,
			Artist: artist,
			Date:   extractDate(card),
			URL:    s.baseURL + href,
		}
		rec.Venue, rec.City = extractVenue(card, link.Text())

		records = append(records, rec)
	})

	return records, nil
}

// extractDate prefers the machine-readable datetime attribute and falls
// back to an ISO date anywhere in the card text.
func extractDate(card *goquery.Selection) string {
	if dt, ok := card.Find("time").First().Attr("datetime"); ok && dt != "" {
		return dt
	}
	return isoDatePattern.FindString(card.Text())
}

// extractVenue mines the card text for the "Venue, City" line: the first
// non-empty line that is neither the event title nor the displayed date.
// Cards without a recognizable venue line yield empty strings.
func extractVenue(card *goquery.Selection, title string) (venue, city string) {
	title = strings.TrimSpace(title)
	displayDate := strings.TrimSpace(card.Find("time").First().Text())

	for _, line := range strings.Split(card.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == title || line == displayDate {
			continue
		}
		if isoDatePattern.MatchString(line) {
			continue
		}

		venue, city, _ = strings.Cut(line, ", ")
		return venue, city
	}

	return "", ""
}

// slugify converts an artist name to the lowercase, hyphen-separated
// form the site uses in listing URLs.
func slugify(artist string) string {
	slug := strings.ToLower(strings.TrimSpace(artist))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
