// Package source defines the contract every event listing source
// implements, so the aggregator can treat Ticketmaster, Bandsintown and
// any future listing the same way.
package source

import (
	"time"

	"github.com/pfrederiksen/club-nights/internal/event"
)

// Window bounds the event dates requested from an upstream source.
// A zero From or To means no bound on that side: the window is passed
// through to the API verbatim, so callers wanting a default range
// (today through today+90 days) must fill it in themselves.
type Window struct {
	From time.Time
	To   time.Time
}

// Fetcher produces the upcoming events one upstream source lists for an
// artist. Implementations surface every network, HTTP or decode failure
// as an error so the caller can report it and move on to the next
// artist/source pair.
type Fetcher interface {
	// Name returns the human-readable source name used in logs.
	Name() string

	// FetchEvents returns all events the source lists for the artist
	// within the window. The returned slice may be empty.
	FetchEvents(artist string, win Window) ([]event.Record, error)
}
