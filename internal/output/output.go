// Package output serializes aggregated events to CSV and to the
// human-readable stdout listing.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pfrederiksen/club-nights/internal/event"
)

// Header is the fixed CSV column order.
var Header = []string{"date", "artist", "venue", "city", "lineup", "url", "source"}

// WriteCSV writes one header row plus one row per record. Fields are
// written exactly as the upstream APIs returned them; absent values
// become empty fields and dates are never reformatted.
func WriteCSV(w io.Writer, records []event.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Date, rec.Artist, rec.Venue, rec.City, rec.Lineup, rec.URL, string(rec.Source)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates (or truncates) path and writes the records to it.
func WriteCSVFile(path string, records []event.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteText prints one line per record in the shape
//
//	DATE | ARTIST @ VENUE — CITY | URL
//
// with "TBA" standing in for a missing date.
func WriteText(w io.Writer, records []event.Record) {
	for _, rec := range records {
		fmt.Fprintf(w, "%s | %s @ %s — %s | %s\n", rec.DisplayDate(), rec.Artist, rec.Venue, rec.City, rec.URL)
	}
}
