package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(upstream *httptest.Server) *Client {
	return &Client{
		BaseURL: upstream.URL,
		Lat:     defaultLat,
		Lon:     defaultLon,
		http:    &http.Client{Timeout: time.Second},
	}
}

func fixture(hours, days int) *forecastResponse {
	out := &forecastResponse{}
	out.Current.Temperature = 28.6
	out.Current.Humidity = 61.2
	out.Current.WeatherCode = 3
	out.Current.WindSpeed = 14.4
	for i := 0; i < hours; i++ {
		out.Hourly.Time = append(out.Hourly.Time, "2025-08-14T10:00")
		out.Hourly.Temperature = append(out.Hourly.Temperature, 27.0)
		out.Hourly.WeatherCode = append(out.Hourly.WeatherCode, 1)
	}
	for i := 0; i < days; i++ {
		out.Daily.Time = append(out.Daily.Time, "2025-08-14")
		out.Daily.TempMax = append(out.Daily.TempMax, 31.0)
		out.Daily.TempMin = append(out.Daily.TempMin, 22.0)
		out.Daily.WeatherCode = append(out.Daily.WeatherCode, 61)
	}
	return out
}

func serveFixture(t *testing.T, resp *forecastResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestCurrentMapsProviderResponse(t *testing.T) {
	srv := serveFixture(t, fixture(0, 0))
	defer srv.Close()

	reading := testClient(srv).Current(context.Background())
	assert.Equal(t, 29, reading.Temperature)
	assert.Equal(t, 61, reading.Humidity)
	assert.Equal(t, 14, reading.WindSpeed)
	assert.Equal(t, 3, reading.WeatherCode)
	assert.Equal(t, "cloud", reading.Icon)
	assert.Equal(t, "Nuvoloso", reading.Description)
}

func TestCurrentFallbackOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	reading := testClient(srv).Current(context.Background())
	assert.Equal(t, Fallback(), reading)
}

func TestCurrentFallbackOnGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	reading := testClient(srv).Current(context.Background())
	assert.Equal(t, Fallback(), reading)
}

func TestDetailedCapsForecasts(t *testing.T) {
	srv := serveFixture(t, fixture(30, 10))
	defer srv.Close()

	report := testClient(srv).Detailed(context.Background())
	assert.Len(t, report.Hourly, 24)
	assert.Len(t, report.Daily, 7)
	assert.Equal(t, "rain", report.Daily[0].Icon)
	assert.Equal(t, "Pioggia leggera", report.Daily[0].Description)
}

func TestDetailedFallbackKeepsEmptySlices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	report := testClient(srv).Detailed(context.Background())
	assert.Equal(t, Fallback(), report.Current)
	assert.NotNil(t, report.Hourly)
	assert.NotNil(t, report.Daily)
	assert.Empty(t, report.Hourly)
	assert.Empty(t, report.Daily)
}

func TestLookupKnownCodes(t *testing.T) {
	assert.Equal(t, Condition{"sun", "Sereno"}, Lookup(0))
	assert.Equal(t, Condition{"storm", "Temporale"}, Lookup(95))
}

func TestLookupUnknownCodeDefaultsToClear(t *testing.T) {
	assert.Equal(t, Lookup(0), Lookup(42))
}
