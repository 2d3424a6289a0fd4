// Package aggregate runs the artist-by-source fetch loop and merges the
// results into a single list.
package aggregate

import (
	"github.com/rs/zerolog"

	"github.com/pfrederiksen/club-nights/internal/event"
	"github.com/pfrederiksen/club-nights/internal/source"
)

// Collect fetches events for every artist from every fetcher, in the
// order both were given, keeping records that pass keep (nil keeps
// everything). Fetches are sequential blocking calls.
//
// A failed fetch is logged with its source and artist and contributes
// zero records; it never stops the remaining artist/source pairs, so a
// dropped source is indistinguishable downstream from an artist with no
// upcoming events. No deduplication happens across sources.
func Collect(log zerolog.Logger, fetchers []source.Fetcher, artists []string, win source.Window, keep func(event.Record) bool) []event.Record {
	records := make([]event.Record, 0)

	for _, artist := range artists {
		for _, f := range fetchers {
			recs, err := f.FetchEvents(artist, win)
			if err != nil {
				log.Error().
					Str("source", f.Name()).
					Str("artist", artist).
					Err(err).
					Msg("event fetch failed")
				continue
			}

			log.Debug().
				Str("source", f.Name()).
				Str("artist", artist).
				Int("events", len(recs)).
				Msg("fetched events")

			for _, rec := range recs {
				if keep == nil || keep(rec) {
					records = append(records, rec)
				}
			}
		}
	}

	return records
}
