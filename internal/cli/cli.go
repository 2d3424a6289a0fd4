package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/club-nights/internal/aggregate"
	"github.com/pfrederiksen/club-nights/internal/bandsintown"
	"github.com/pfrederiksen/club-nights/internal/club"
	"github.com/pfrederiksen/club-nights/internal/event"
	"github.com/pfrederiksen/club-nights/internal/ical"
	"github.com/pfrederiksen/club-nights/internal/logging"
	"github.com/pfrederiksen/club-nights/internal/output"
	"github.com/pfrederiksen/club-nights/internal/residentadvisor"
	"github.com/pfrederiksen/club-nights/internal/source"
	"github.com/pfrederiksen/club-nights/internal/ticketmaster"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	// DefaultWindowDays is the search window applied when --to is absent.
	DefaultWindowDays = 90

	// DefaultCSVPath is the output filename when --csv is absent.
	DefaultCSVPath = "club_nights.csv"
)

// Source names accepted by --sources.
const (
	SourceNameTicketmaster = "ticketmaster"
	SourceNameBandsintown  = "bandsintown"
	SourceNameRA           = "ra"
)

var (
	flagArtists      []string
	flagFrom         string
	flagTo           string
	flagCountry      string
	flagCity         string
	flagCSV          string
	flagICS          string
	flagNoClubFilter bool
	flagMaxPages     int
	flagSources      []string
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club-nights",
		Short: "Find upcoming club nights featuring specific DJs",
		Long: `A CLI tool to find upcoming club nights featuring specific DJs.
Queries public event-listing sources, keeps events at club-like venues,
and writes the merged, date-sorted results to a CSV file and stdout.`,
		RunE: runFind,
	}

	// Define flags
	cmd.Flags().StringSliceVar(&flagArtists, "artists", nil, "Artist names (required; repeat or comma-separate)")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Start date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&flagTo, "to", "", "End date YYYY-MM-DD (default: today +90 days)")
	cmd.Flags().StringVar(&flagCountry, "country", "", "Optional ISO country code (e.g. US, GB)")
	cmd.Flags().StringVar(&flagCity, "city", "", "Optional city name (Ticketmaster only)")
	cmd.Flags().StringVar(&flagCSV, "csv", DefaultCSVPath, "Output CSV filename")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also write an iCalendar file to this path")
	cmd.Flags().BoolVar(&flagNoClubFilter, "no-club-filter", false, "Disable the nightclub venue heuristic (keep all venues)")
	cmd.Flags().IntVar(&flagMaxPages, "max-pages", ticketmaster.DefaultMaxPages, "Max Ticketmaster pages per artist")
	cmd.Flags().StringSliceVar(&flagSources, "sources", []string{SourceNameTicketmaster, SourceNameBandsintown},
		"Sources to query: ticketmaster, bandsintown, ra")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("artists")

	return cmd
}

// runFind is the main command logic
func runFind(cmd *cobra.Command, args []string) error {
	log := logging.New(os.Stderr, flagVerbose)

	// .env is a convenience for local runs; a missing file is fine.
	godotenv.Load()

	win, err := parseWindow(flagFrom, flagTo)
	if err != nil {
		return err
	}

	// Credentials are checked here, before any network call.
	fetchers, err := buildFetchers(flagSources)
	if err != nil {
		return err
	}

	return run(log, fetchers, flagArtists, win, !flagNoClubFilter, flagCSV, flagICS, os.Stdout)
}

// run aggregates, sorts and writes. Split from runFind so tests can
// drive it with their own fetchers and writers.
func run(log zerolog.Logger, fetchers []source.Fetcher, artists []string, win source.Window, clubFilter bool, csvPath, icsPath string, stdout io.Writer) error {
	var keep func(event.Record) bool
	if clubFilter {
		keep = func(rec event.Record) bool { return club.LooksLikeClub(rec.Venue) }
	}

	records := aggregate.Collect(log, fetchers, artists, win, keep)
	event.SortByDate(records)

	if err := output.WriteCSVFile(csvPath, records); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	if icsPath != "" {
		if err := os.WriteFile(icsPath, []byte(ical.Generate(records)), 0o644); err != nil {
			return fmt.Errorf("writing iCalendar file: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Wrote %d events to %s\n", len(records), csvPath)
	output.WriteText(stdout, records)

	return nil
}

// parseWindow validates the date flags and applies the default window
// (today through today+90 days) for whichever bound is missing.
func parseWindow(from, to string) (source.Window, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	win := source.Window{
		From: today,
		To:   today.AddDate(0, 0, DefaultWindowDays),
	}

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return source.Window{}, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD)", from)
		}
		win.From = t
	}

	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return source.Window{}, fmt.Errorf("invalid --to date %q (want YYYY-MM-DD)", to)
		}
		win.To = t
	}

	return win, nil
}

// buildFetchers resolves the enabled sources and checks that each one's
// credential is present. A missing credential is a fatal configuration
// error: it aborts the run before any network call is made.
func buildFetchers(names []string) ([]source.Fetcher, error) {
	fetchers := make([]source.Fetcher, 0, len(names))

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case SourceNameTicketmaster:
			key := os.Getenv("TICKETMASTER_API_KEY")
			if key == "" {
				return nil, fmt.Errorf("TICKETMASTER_API_KEY must be set to query Ticketmaster")
			}
			fetchers = append(fetchers, ticketmaster.New(ticketmaster.Config{
				APIKey:   key,
				MaxPages: flagMaxPages,
				Country:  flagCountry,
				City:     flagCity,
			}))

		case SourceNameBandsintown:
			appID := os.Getenv("BANDSINTOWN_APP_ID")
			if appID == "" {
				return nil, fmt.Errorf("BANDSINTOWN_APP_ID must be set to query Bandsintown")
			}
			fetchers = append(fetchers, bandsintown.New(appID))

		case SourceNameRA:
			fetchers = append(fetchers, residentadvisor.New())

		default:
			return nil, fmt.Errorf("unknown source %q (valid: ticketmaster, bandsintown, ra)", name)
		}
	}

	if len(fetchers) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}

	return fetchers, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
