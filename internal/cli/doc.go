// Package cli implements the command-line interface for club-nights.
//
// The cli package provides the Cobra-based CLI: it validates flags and
// credentials, builds the enabled source fetchers, runs the aggregation
// loop, and writes the CSV, optional iCalendar file and stdout listing.
package cli
