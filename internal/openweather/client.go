package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"weathercli.app/config"
	"weathercli.app/internal/weather"
	"weathercli.app/pkg/errors"
	"weathercli.app/pkg/logger"
)

// Client talks to the OpenWeatherMap current-weather endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new OpenWeatherMap client
func NewClient(cfg *config.WeatherConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		logger: log,
	}
}

// errorBody is the JSON body OpenWeatherMap attaches to failed requests.
// The cod member is skipped: the provider sends it as a number or a string
// depending on the failure, and the HTTP status already carries it.
type errorBody struct {
	Message string `json:"message"`
}

// GetCurrentWeather performs one GET against the provider and decodes the
// raw payload. It does not retry; any failure surfaces as a TransportError.
func (c *Client) GetCurrentWeather(ctx context.Context, query *weather.Query) (*weather.ProviderResponse, error) {
	params := url.Values{}
	params.Set("q", query.LocationQuery())
	params.Set("appid", query.APIKey)
	params.Set("units", string(query.Units))
	params.Set("lang", "en")

	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build provider request", err)
	}

	c.logger.Debug("Requesting current weather",
		"location", query.LocationQuery(),
		"units", string(query.Units))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("openweathermap request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close provider response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleHTTPError(resp)
	}

	var raw weather.ProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.NewTransportError("decode openweathermap response", err)
	}

	c.logger.Debug("Provider response received", "city", raw.Name, "cod", raw.Cod)
	return &raw, nil
}

func (c *Client) handleHTTPError(resp *http.Response) error {
	var body errorBody
	// Best effort; the status code alone is enough for the error.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	detail := body.Message
	if detail != "" {
		detail = ": " + detail
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.NewTransportError("openweathermap: invalid API key"+detail, nil)
	case http.StatusNotFound:
		return errors.NewTransportError("openweathermap: location not found"+detail, nil)
	case http.StatusTooManyRequests:
		return errors.NewTransportError("openweathermap: rate limit exceeded"+detail, nil)
	case http.StatusServiceUnavailable:
		return errors.NewTransportError("openweathermap: service unavailable"+detail, nil)
	default:
		return errors.NewTransportError(fmt.Sprintf("openweathermap: HTTP %d error%s", resp.StatusCode, detail), nil)
	}
}
