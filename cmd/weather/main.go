// Command weather looks up current conditions and a five-day forecast from
// the terminal. Preferences and the last searched city are kept in a local
// SQLite file unless PREFERENCES_STORE says otherwise.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"weatherlookup.app/internal/adapters/external"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/app"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/presentation"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

// cliSessionID is stable across runs so the same preferences are found again
var cliSessionID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("weatherlookup.app/cli")).String()

type options struct {
	city        string
	coords      *weather.Coordinates
	locate      bool
	toggleUnit  bool
	toggleTheme bool
	share       bool
	shareFile   string
	timeout     time.Duration
	verbose     bool
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts     options
		lat, lon float64
	)

	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.city, "city", "", "City name to look up (a trailing argument works too)")
	fs.Float64Var(&lat, "lat", 0, "Latitude to look up, together with -lon")
	fs.Float64Var(&lon, "lon", 0, "Longitude to look up, together with -lat")
	fs.BoolVar(&opts.locate, "locate", false, "Look up the current location")
	fs.BoolVar(&opts.toggleUnit, "toggle-unit", false, "Switch between Celsius and Fahrenheit and remember the choice")
	fs.BoolVar(&opts.toggleTheme, "toggle-theme", false, "Switch between the light and dark theme and remember the choice")
	fs.BoolVar(&opts.share, "share", false, "Share a one-line summary of the result")
	fs.StringVar(&opts.shareFile, "share-file", "", "Append shared summaries to this file instead of printing them")
	fs.DurationVar(&opts.timeout, "timeout", 15*time.Second, "Overall deadline for the lookup")
	fs.BoolVar(&opts.verbose, "v", false, "Write debug logs to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.city == "" && fs.NArg() > 0 {
		opts.city = strings.Join(fs.Args(), " ")
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lat"] != set["lon"] {
		return options{}, fmt.Errorf("-lat and -lon must be given together")
	}
	if set["lat"] {
		coords := weather.Coordinates{Latitude: lat, Longitude: lon}
		if err := coords.IsValid(); err != nil {
			return options{}, err
		}
		opts.coords = &coords
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if os.Getenv("PREFERENCES_STORE") == "" {
		cfg.Preferences.Store = config.StoreTypeSQLite
	}
	cfg.Logging.FilePath = ""

	logWriter := io.Discard
	if opts.verbose {
		logWriter = stderr
		cfg.Logging.Level = "debug"
	}
	logger := infrastructure.NewSlogLoggerAdapter(logWriter, cfg.Logging.Level)

	var sharer ports.Sharer = external.NewWriterSharer(stdout)
	if opts.shareFile != "" {
		sharer = external.NewFallbackSharer(external.NewFileSharer(opts.shareFile), sharer, logger)
	}

	deps, err := app.NewDependencyContainer(cfg, app.DependencyOptions{LogWriter: logWriter, Sharer: sharer})
	if err != nil {
		return err
	}
	defer releaseResources(deps.Cleanup, logger)

	location, err := cfg.Weather.Location()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	session, _, err := deps.Sessions().GetOrCreate(cliSessionID)
	if err != nil {
		return err
	}
	session.Restore(ctx)

	if opts.toggleUnit {
		fmt.Fprintf(stdout, "Temperature unit set to %s\n", session.ToggleUnit(ctx))
	}
	if opts.toggleTheme {
		fmt.Fprintf(stdout, "Theme set to %s\n", session.ToggleTheme(ctx))
	}

	switch {
	case opts.city != "":
		if err := session.Search(ctx, opts.city); err != nil {
			return err
		}
	case opts.coords != nil:
		if err := session.UseCoordinates(ctx, *opts.coords); err != nil {
			return err
		}
	case opts.locate:
		session.UseLocation(ctx)
	default:
		session.Activate(ctx)
	}

	page := presentation.Render(session.View(), presentation.Options{Now: time.Now(), Location: location})
	printPage(stdout, page)

	if page.Weather == nil {
		if page.SearchBar.Error != "" {
			return errors.New(page.SearchBar.Error)
		}
		return nil
	}

	if opts.share {
		if _, ok := session.Share(ctx); !ok {
			fmt.Fprintln(stderr, "Nothing to share yet")
		}
	}
	return nil
}

// releaseResources closes the preference store and the log file, warning when
// either fails so a pending SQLite write is not lost silently.
func releaseResources(cleanup func() error, logger ports.Logger) {
	if err := cleanup(); err != nil {
		logger.Warn("Failed to release resources", ports.F("error", err))
	}
}

func printPage(w io.Writer, page presentation.Page) {
	if page.Weather == nil {
		if page.SearchBar.Error == "" && page.Hint != "" {
			fmt.Fprintln(w, page.Hint)
		}
		return
	}

	card := page.Weather
	fmt.Fprintf(w, "\nWeather in %s\n", card.Location)
	fmt.Fprintf(w, "%s\n\n", card.Updated)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Temperature:\t%s\n", card.Temperature)
	fmt.Fprintf(tw, "Feels like:\t%s\n", card.FeelsLike)
	fmt.Fprintf(tw, "Conditions:\t%s\n", card.Description)
	fmt.Fprintf(tw, "Humidity:\t%s\n", card.Humidity)
	fmt.Fprintf(tw, "Wind:\t%s\n", card.Wind)
	fmt.Fprintf(tw, "Pressure:\t%s\n", card.Pressure)
	tw.Flush()

	if len(page.Forecast) == 0 {
		return
	}

	fmt.Fprintln(w, "\nForecast")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, day := range page.Forecast {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s / %s\t%s\n", day.Label, day.Date, day.Temperature, day.High, day.Low, day.Description)
	}
	tw.Flush()
}
