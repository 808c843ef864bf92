package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"huntcast/internal/config"
	"huntcast/internal/types"
)

// maxResponseBodySize caps provider response bodies (1 MB).
const maxResponseBodySize = 1 << 20

// hPaToInHg converts hectopascals to inches of mercury.
const hPaToInHg = 0.029529983

// DailyForecast is one day of the provider forecast, reduced to the
// environmental inputs the scoring engine consumes. The snapshot timestamp
// is pinned to local dawn, the representative hunting hour for a day.
type DailyForecast struct {
	Date     time.Time                  `json:"date"`
	Snapshot types.EnvironmentalSnapshot `json:"snapshot"`
}

// Source abstracts the forecast provider for handlers and the outlook
// planner. Tests inject a stub.
type Source interface {
	Current(ctx context.Context) (types.EnvironmentalSnapshot, error)
	Forecast(ctx context.Context, days int) ([]DailyForecast, error)
}

// Provider fetches conditions from an Open-Meteo compatible endpoint.
type Provider struct {
	baseURL   string
	latitude  float64
	longitude float64
	transport *resilientClient
}

// NewProvider constructs a Provider from configuration.
func NewProvider(cfg config.WeatherConfig) *Provider {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Provider{
		baseURL:   cfg.BaseURL,
		latitude:  cfg.Latitude,
		longitude: cfg.Longitude,
		transport: newResilientClient(httpClient, DefaultRetryPolicy(), cfg.UserAgent),
	}
}

// currentResponse mirrors the provider's current-conditions payload.
type currentResponse struct {
	Current struct {
		Time          string  `json:"time"`
		Temperature2m float64 `json:"temperature_2m"`
		WindSpeed10m  float64 `json:"wind_speed_10m"`
		PressureMsl   float64 `json:"pressure_msl"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

// forecastResponse mirrors the provider's daily forecast payload. Parallel
// arrays are indexed by day.
type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
		PressureMslMean  []float64 `json:"pressure_msl_mean"`
		WeatherCode      []int     `json:"weather_code"`
	} `json:"daily"`
}

// Current fetches present conditions at the configured coordinates.
func (p *Provider) Current(ctx context.Context) (types.EnvironmentalSnapshot, error) {
	q := p.baseQuery()
	q.Set("current", "temperature_2m,wind_speed_10m,pressure_msl,weather_code")

	var payload currentResponse
	if err := p.get(ctx, q, &payload); err != nil {
		return types.EnvironmentalSnapshot{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.Current.Time)
	if err != nil {
		return types.EnvironmentalSnapshot{}, types.NewAppError(
			types.ErrCodeUpstreamWeather,
			"weather provider returned an unparseable observation time",
			err,
		)
	}

	return types.EnvironmentalSnapshot{
		TemperatureF:       payload.Current.Temperature2m,
		WindSpeedMph:       payload.Current.WindSpeed10m,
		Condition:          conditionFromCode(payload.Current.WeatherCode),
		BarometricPressure: payload.Current.PressureMsl * hPaToInHg,
		Timestamp:          ts.UTC(),
	}, nil
}

// Forecast fetches the next N days of conditions, one snapshot per day.
func (p *Provider) Forecast(ctx context.Context, days int) ([]DailyForecast, error) {
	q := p.baseQuery()
	q.Set("daily", "temperature_2m_max,wind_speed_10m_max,pressure_msl_mean,weather_code")
	q.Set("forecast_days", fmt.Sprintf("%d", days))

	var payload forecastResponse
	if err := p.get(ctx, q, &payload); err != nil {
		return nil, err
	}

	d := payload.Daily
	if len(d.Time) != len(d.Temperature2mMax) ||
		len(d.Time) != len(d.WindSpeed10mMax) ||
		len(d.Time) != len(d.PressureMslMean) ||
		len(d.Time) != len(d.WeatherCode) {
		return nil, types.NewAppError(
			types.ErrCodeUpstreamWeather,
			"weather provider returned mismatched daily series lengths",
			nil,
		)
	}

	out := make([]DailyForecast, 0, len(d.Time))
	for i, day := range d.Time {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, types.NewAppError(
				types.ErrCodeUpstreamWeather,
				"weather provider returned an unparseable forecast date",
				err,
			)
		}
		// Score each day at 07:00, the typical first-light hunting hour.
		ts := time.Date(date.Year(), date.Month(), date.Day(), 7, 0, 0, 0, time.UTC)
		out = append(out, DailyForecast{
			Date: date,
			Snapshot: types.EnvironmentalSnapshot{
				TemperatureF:       d.Temperature2mMax[i],
				WindSpeedMph:       d.WindSpeed10mMax[i],
				Condition:          conditionFromCode(d.WeatherCode[i]),
				BarometricPressure: d.PressureMslMean[i] * hPaToInHg,
				Timestamp:          ts,
			},
		})
	}
	return out, nil
}

// baseQuery returns the query parameters shared by all provider calls.
func (p *Provider) baseQuery() url.Values {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", p.latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", p.longitude))
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("timezone", "UTC")
	return q
}

// get performs a GET against the forecast endpoint and decodes the response
// into dst.
func (p *Provider) get(ctx context.Context, q url.Values, dst interface{}) error {
	endpoint := p.baseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected, "failed to build provider request", err)
	}

	resp, err := p.transport.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.NewAppError(
			types.ErrCodeUpstreamWeather,
			fmt.Sprintf("weather provider returned %d", resp.StatusCode),
			nil,
		)
	}

	body := io.LimitReader(resp.Body, maxResponseBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return types.NewAppError(
			types.ErrCodeUpstreamWeather,
			"failed to decode weather provider response",
			err,
		)
	}
	return nil
}

// conditionFromCode maps WMO weather interpretation codes onto the eight
// sky conditions the scoring tables understand.
func conditionFromCode(code int) types.SkyCondition {
	switch {
	case code == 0:
		return types.SkySunny
	case code == 1:
		return types.SkyClear
	case code == 2:
		return types.SkyPartlyCloudy
	case code == 3:
		return types.SkyOvercast
	case code == 45 || code == 48:
		return types.SkyFog
	case (code >= 51 && code <= 57) || code == 61 || code == 80:
		return types.SkyLightRain
	case (code >= 63 && code <= 67) || code == 81 || code == 82 || (code >= 95 && code <= 99):
		return types.SkyHeavyRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return types.SkySnow
	default:
		return types.SkyOvercast
	}
}
