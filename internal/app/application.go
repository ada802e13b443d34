package app

import (
	"context"

	"github.com/google/uuid"
	"weathercli.app/config"
	"weathercli.app/internal/openweather"
	"weathercli.app/internal/output"
	"weathercli.app/internal/weather"
	"weathercli.app/pkg/errors"
	"weathercli.app/pkg/logger"
)

// WeatherProvider fetches raw provider payloads for a query
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query *weather.Query) (*weather.ProviderResponse, error)
}

// ReportSink delivers a finished report
type ReportSink interface {
	Write(report *weather.Report, query *weather.Query) error
}

// Application wires the lookup pipeline: provider, transformer, sink
type Application struct {
	config   *config.Config
	logger   *logger.Logger
	provider WeatherProvider
	sink     ReportSink
}

// Dependencies holds the collaborators an Application needs
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Provider WeatherProvider
	Sink     ReportSink
}

// NewApplication creates an application from explicit dependencies
func NewApplication(deps Dependencies) (*Application, error) {
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Sink == nil {
		return nil, errors.NewValidationError("report sink is required")
	}

	return &Application{
		config:   deps.Config,
		logger:   deps.Logger,
		provider: deps.Provider,
		sink:     deps.Sink,
	}, nil
}

// Bootstrap loads configuration and builds an application with the default
// OpenWeatherMap provider and stdout/file sink.
func Bootstrap(log *logger.Logger) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		return nil, err
	}

	return NewApplication(Dependencies{
		Config:   cfg,
		Logger:   log,
		Provider: openweather.NewClient(&cfg.Weather, log),
		Sink:     output.NewSink(),
	})
}

// Config returns the loaded configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Run executes one lookup: fetch, transform, write. The pipeline is
// strictly linear; the first failing stage aborts the run and nothing is
// written after a failure.
func (a *Application) Run(ctx context.Context, query *weather.Query) error {
	log := a.logger.WithField("invocation_id", uuid.NewString())

	log.Debug("Fetching current weather",
		"location", query.LocationQuery(),
		"units", string(query.Units))
	raw, err := a.provider.GetCurrentWeather(ctx, query)
	if err != nil {
		log.Error("Provider request failed", "error", err)
		return err
	}

	report, err := weather.Transform(raw, query.Units)
	if err != nil {
		log.Error("Failed to transform provider response", "error", err)
		return err
	}

	if err := a.sink.Write(report, query); err != nil {
		log.Error("Failed to write weather report", "error", err)
		return err
	}

	log.Debug("Weather report written",
		"city", report.Location.City,
		"country", report.Location.Country)
	return nil
}
