package weather

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"weathercli.app/pkg/errors"
)

// Units selects the measurement system for temperature and wind speed
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// TemperatureLabel returns the temperature unit label for these units
func (u Units) TemperatureLabel() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// SpeedLabel returns the wind speed unit label for these units
func (u Units) SpeedLabel() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// OutputFormat selects how the report is rendered by the sink
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// Query describes a single weather lookup. It is built once by the CLI
// layer and not mutated afterwards.
type Query struct {
	Location   string       `validate:"required"`
	Country    string       `validate:"omitempty,len=2"`
	Units      Units        `validate:"required,oneof=metric imperial"`
	APIKey     string       `validate:"required"`
	OutputPath string       `validate:"-"`
	Format     OutputFormat `validate:"required,oneof=json text"`
	Pretty     bool         `validate:"-"`
}

var validate = validator.New()

// QueryParams groups the inputs the CLI collects before resolution
type QueryParams struct {
	Location   string
	Country    string
	Units      string
	APIKey     string
	EnvAPIKey  string
	OutputPath string
	Format     string
	Pretty     bool
}

// NewQuery resolves raw CLI inputs into an immutable Query.
// The API key comes from the explicit flag first, then the environment
// (which godotenv has already backfilled from .env). A location of the
// form "London,uk" is split into city and country, original behavior.
func NewQuery(params QueryParams) (*Query, error) {
	location := strings.TrimSpace(params.Location)
	country := strings.TrimSpace(params.Country)
	if city, cc, ok := strings.Cut(location, ","); ok {
		location = strings.TrimSpace(city)
		if cc = strings.TrimSpace(cc); cc != "" {
			country = cc
		}
	}

	apiKey := params.APIKey
	if apiKey == "" {
		apiKey = params.EnvAPIKey
	}
	if apiKey == "" {
		return nil, errors.NewConfigurationError(
			"API key is required: set it with --api-key, the OPENWEATHER_API_KEY environment variable, or a .env file", nil)
	}

	units := Units(params.Units)
	if units == "" {
		units = UnitsMetric
	}

	format := OutputFormat(params.Format)
	if format == "" {
		format = FormatJSON
	}

	query := &Query{
		Location:   location,
		Country:    strings.ToLower(country),
		Units:      units,
		APIKey:     apiKey,
		OutputPath: params.OutputPath,
		Format:     format,
		Pretty:     params.Pretty,
	}

	if err := validate.Struct(query); err != nil {
		return nil, errors.NewValidationError(describeValidationError(err))
	}

	return query, nil
}

// LocationQuery returns the provider query string, "city" or "city,cc"
func (q *Query) LocationQuery() string {
	if q.Country != "" {
		return q.Location + "," + q.Country
	}
	return q.Location
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	switch verrs[0].Field() {
	case "Location":
		return "location cannot be empty"
	case "Country":
		return "country must be a two-letter code"
	case "Units":
		return "units must be one of: metric, imperial"
	case "APIKey":
		return "API key cannot be empty"
	case "Format":
		return "format must be one of: json, text"
	default:
		return err.Error()
	}
}
