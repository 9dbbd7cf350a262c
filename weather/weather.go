package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"lapillo/utils"

	"github.com/julienschmidt/httprouter"
)

// Torre Lapillo.
const (
	defaultLat = 40.28
	defaultLon = 17.84
)

const defaultBaseURL = "https://api.open-meteo.com"

// Reading is the simplified current-conditions payload served to guests.
type Reading struct {
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	WeatherCode int    `json:"weather_code"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type HourlyEntry struct {
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
	WeatherCode int    `json:"weather_code"`
	Icon        string `json:"icon"`
}

type DailyEntry struct {
	Date        string `json:"date"`
	TempMax     int    `json:"temp_max"`
	TempMin     int    `json:"temp_min"`
	WeatherCode int    `json:"weather_code"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Report is the extended payload: current plus bounded forecasts.
type Report struct {
	Current Reading       `json:"current"`
	Hourly  []HourlyEntry `json:"hourly"`
	Daily   []DailyEntry  `json:"daily"`
}

// Client calls the Open-Meteo forecast API. Every failure degrades to a
// plausible fallback reading; the endpoints never fail the caller.
type Client struct {
	BaseURL string
	Lat     float64
	Lon     float64
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Lat:     defaultLat,
		Lon:     defaultLon,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Fallback is served whenever the provider is unreachable or returns garbage.
func Fallback() Reading {
	c := Lookup(0)
	return Reading{
		Temperature: 26,
		Humidity:    55,
		WindSpeed:   12,
		WeatherCode: 0,
		Icon:        c.Icon,
		Description: c.Description,
	}
}

// provider response shape (subset).
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

func (c *Client) fetch(ctx context.Context, detailed bool) (*forecastResponse, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.2f&longitude=%.2f&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m&timezone=Europe/Rome",
		c.BaseURL, c.Lat, c.Lon,
	)
	if detailed {
		url += "&hourly=temperature_2m,weather_code&forecast_hours=24&daily=temperature_2m_max,temperature_2m_min,weather_code&forecast_days=7"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	var out forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Current returns the simplified reading, or the fallback on any failure.
func (c *Client) Current(ctx context.Context) Reading {
	raw, err := c.fetch(ctx, false)
	if err != nil {
		return Fallback()
	}
	return readingFrom(raw)
}

// Detailed returns current conditions plus the next 24h and 7d, with empty
// forecast slices alongside the fallback reading on failure.
func (c *Client) Detailed(ctx context.Context) Report {
	raw, err := c.fetch(ctx, true)
	if err != nil {
		return Report{Current: Fallback(), Hourly: []HourlyEntry{}, Daily: []DailyEntry{}}
	}

	report := Report{
		Current: readingFrom(raw),
		Hourly:  []HourlyEntry{},
		Daily:   []DailyEntry{},
	}

	for i, ts := range raw.Hourly.Time {
		if i >= 24 || i >= len(raw.Hourly.Temperature) {
			break
		}
		code := 0
		if i < len(raw.Hourly.WeatherCode) {
			code = raw.Hourly.WeatherCode[i]
		}
		report.Hourly = append(report.Hourly, HourlyEntry{
			Time:        ts,
			Temperature: round(raw.Hourly.Temperature[i]),
			WeatherCode: code,
			Icon:        Lookup(code).Icon,
		})
	}

	for i, ts := range raw.Daily.Time {
		if i >= 7 || i >= len(raw.Daily.TempMax) || i >= len(raw.Daily.TempMin) {
			break
		}
		code := 0
		if i < len(raw.Daily.WeatherCode) {
			code = raw.Daily.WeatherCode[i]
		}
		cond := Lookup(code)
		report.Daily = append(report.Daily, DailyEntry{
			Date:        ts,
			TempMax:     round(raw.Daily.TempMax[i]),
			TempMin:     round(raw.Daily.TempMin[i]),
			WeatherCode: code,
			Icon:        cond.Icon,
			Description: cond.Description,
		})
	}

	return report
}

func readingFrom(raw *forecastResponse) Reading {
	cond := Lookup(raw.Current.WeatherCode)
	return Reading{
		Temperature: round(raw.Current.Temperature),
		Humidity:    round(raw.Current.Humidity),
		WindSpeed:   round(raw.Current.WindSpeed),
		WeatherCode: raw.Current.WeatherCode,
		Icon:        cond.Icon,
		Description: cond.Description,
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

// GetWeather handles GET /api/weather.
func (c *Client) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, c.Current(r.Context()))
}

// GetDetailedWeather handles GET /api/weather/detailed.
func (c *Client) GetDetailedWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, c.Detailed(r.Context()))
}
