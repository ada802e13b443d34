package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercli.app/pkg/errors"
)

const londonPayload = `{
	"coord": {"lon": -0.1257, "lat": 51.5085},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
	"main": {"temp": 15.5, "feels_like": 14.9, "temp_min": 13.9, "temp_max": 16.7, "pressure": 1012, "humidity": 72},
	"visibility": 10000,
	"wind": {"speed": 4.1, "deg": 240},
	"clouds": {"all": 75},
	"dt": 1717500000,
	"sys": {"country": "GB", "sunrise": 1717473600, "sunset": 1717532400},
	"timezone": 3600,
	"name": "London",
	"cod": 200
}`

func setProviderEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("OPENWEATHER_BASE_URL", baseURL)
	t.Setenv("OPENWEATHER_REQUEST_TIMEOUT", "2")
}

func TestRootCommand_LondonMetricToFile(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(londonPayload))
	}))
	defer mockServer.Close()

	setProviderEnv(t, mockServer.URL)
	t.Setenv("OPENWEATHER_API_KEY", "test-api-key")

	outPath := filepath.Join(t.TempDir(), "weather.json")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"London", "--units", "metric", "--pretty", "--output", outPath})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(contents, &report))

	location := report["location"].(map[string]interface{})
	assert.Equal(t, "London", location["city"])

	conditions := report["weather"].(map[string]interface{})
	temperature := conditions["temperature"].(map[string]interface{})
	assert.Equal(t, "°C", temperature["unit"])
}

func TestRootCommand_APIKeyFlagOverridesEnvironment(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "flag-key", r.URL.Query().Get("appid"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(londonPayload))
	}))
	defer mockServer.Close()

	setProviderEnv(t, mockServer.URL)
	t.Setenv("OPENWEATHER_API_KEY", "env-key")

	outPath := filepath.Join(t.TempDir(), "weather.json")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"London", "--api-key", "flag-key", "--output", outPath})

	require.NoError(t, cmd.Execute())
}

func TestRootCommand_MissingAPIKeyFailsBeforeNetwork(t *testing.T) {
	var requests atomic.Int64
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	setProviderEnv(t, mockServer.URL)
	t.Setenv("OPENWEATHER_API_KEY", "")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"London"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, int64(0), requests.Load())

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ConfigurationError, appErr.Type)
}

func TestRootCommand_NotFoundWritesNoFile(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer mockServer.Close()

	setProviderEnv(t, mockServer.URL)
	t.Setenv("OPENWEATHER_API_KEY", "test-api-key")

	outPath := filepath.Join(t.TempDir(), "weather.json")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"Atlantis", "--output", outPath})

	err := cmd.Execute()

	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.TransportError, appErr.Type)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommand_RejectsUnknownUnits(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-api-key")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"London", "--units", "kelvin"})

	err := cmd.Execute()

	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ValidationError, appErr.Type)
}
