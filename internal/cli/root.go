package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"weathercli.app/internal/app"
	"weathercli.app/internal/weather"
	"weathercli.app/pkg/logger"
)

// Version is stamped at build time
var Version = "0.1.0"

type options struct {
	country    string
	units      string
	apiKey     string
	outputPath string
	format     string
	pretty     bool
	verbose    bool
}

// NewRootCommand builds the command surface:
//
//	weather <location> [--country cc] [--units metric|imperial]
//	        [--pretty] [--output path] [--api-key key]
//	        [--format json|text] [--verbose]
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "weather <location>",
		Short: "Fetch current weather for a location as structured JSON",
		Long: `Fetch current weather data for a location from OpenWeatherMap.

LOCATION can be a city name (e.g. 'London') or a city name with a country
code (e.g. 'London,uk'). The API key is taken from --api-key, then the
OPENWEATHER_API_KEY environment variable, then a .env file.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.country, "country", "c", "", "country code (e.g. us, gb, jp)")
	cmd.Flags().StringVarP(&opts.units, "units", "u", string(weather.UnitsMetric), "units of measurement (metric/imperial)")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "OpenWeatherMap API key (or OPENWEATHER_API_KEY env var)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(weather.FormatJSON), "output format (json/text)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "pretty-print JSON output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, location string, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := logger.NewWithLevel(level)

	application, err := app.Bootstrap(log)
	if err != nil {
		return err
	}

	query, err := weather.NewQuery(weather.QueryParams{
		Location:   location,
		Country:    opts.country,
		Units:      opts.units,
		APIKey:     opts.apiKey,
		EnvAPIKey:  application.Config().Weather.APIKey,
		OutputPath: opts.outputPath,
		Format:     opts.format,
		Pretty:     opts.pretty,
	})
	if err != nil {
		return err
	}

	return application.Run(ctx, query)
}
