package event

import "strings"

// Source identifies the upstream listing an event came from.
type Source string

const (
	SourceTicketmaster    Source = "Ticketmaster"
	SourceBandsintown     Source = "Bandsintown"
	SourceResidentAdvisor Source = "Resident Advisor"
)

// Record represents one upcoming event for a queried artist.
// Source and Artist are always populated; every other field may be empty
// when the upstream listing omits it.
type Record struct {
	Source Source `json:"source"`
	Artist string `json:"artist"`
	Date   string `json:"date,omitempty"` // ISO-8601 as returned upstream, or ""
	Venue  string `json:"venue,omitempty"`
	City   string `json:"city,omitempty"` // "City, CountryCode" when both parts are known
	Lineup string `json:"lineup,omitempty"`
	URL    string `json:"url,omitempty"`
}

// DisplayDate returns the raw date string, or "TBA" when the upstream
// listing did not include one.
func (r Record) DisplayDate() string {
	if r.Date == "" {
		return "TBA"
	}
	return r.Date
}

// JoinNonEmpty joins the non-empty parts with sep. Sources use it to
// render composite fields like "City, CountryCode" without stray
// separators when a part is missing.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
