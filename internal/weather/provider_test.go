package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntcast/internal/config"
	"huntcast/internal/types"
)

func testProvider(baseURL string) *Provider {
	p := NewProvider(config.WeatherConfig{
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		UserAgent: "huntcast-test/1.0",
		Latitude:  44.8942,
		Longitude: -71.4962,
	})
	p.transport.sleepFn = func(time.Duration) {}
	return p
}

func TestProvider_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "44.8942", q.Get("latitude"))
		assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		assert.Equal(t, "mph", q.Get("wind_speed_unit"))
		assert.Equal(t, "huntcast-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"time": "2025-10-15T07:30",
				"temperature_2m": 45.0,
				"wind_speed_10m": 8.0,
				"pressure_msl": 1021.0,
				"weather_code": 2
			}
		}`))
	}))
	defer srv.Close()

	snap, err := testProvider(srv.URL).Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 45.0, snap.TemperatureF)
	assert.Equal(t, 8.0, snap.WindSpeedMph)
	assert.Equal(t, types.SkyPartlyCloudy, snap.Condition)
	assert.InDelta(t, 30.15, snap.BarometricPressure, 0.01)
	assert.Equal(t, time.Date(2025, 10, 15, 7, 30, 0, 0, time.UTC), snap.Timestamp)
}

func TestProvider_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2025-10-15", "2025-10-16", "2025-10-17"],
				"temperature_2m_max": [45, 50, 38],
				"wind_speed_10m_max": [8, 12, 22],
				"pressure_msl_mean": [1021, 1015, 1005],
				"weather_code": [2, 3, 71]
			}
		}`))
	}))
	defer srv.Close()

	days, err := testProvider(srv.URL).Forecast(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, types.SkyPartlyCloudy, days[0].Snapshot.Condition)
	assert.Equal(t, types.SkyOvercast, days[1].Snapshot.Condition)
	assert.Equal(t, types.SkySnow, days[2].Snapshot.Condition)
	assert.Equal(t, 7, days[0].Snapshot.Timestamp.Hour())
	assert.Equal(t, time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), days[2].Date)
}

func TestProvider_MismatchedSeriesLengths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2025-10-15", "2025-10-16"],
				"temperature_2m_max": [45],
				"wind_speed_10m_max": [8, 12],
				"pressure_msl_mean": [1021, 1015],
				"weather_code": [2, 3]
			}
		}`))
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).Forecast(context.Background(), 2)
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeUpstreamWeather, appErr.Code)
}

func TestProvider_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{
			"current": {
				"time": "2025-10-15T07:30",
				"temperature_2m": 45.0,
				"wind_speed_10m": 8.0,
				"pressure_msl": 1021.0,
				"weather_code": 0
			}
		}`))
	}))
	defer srv.Close()

	snap, err := testProvider(srv.URL).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.SkySunny, snap.Condition)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProvider_ExhaustedRetriesMapToUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).Current(context.Background())
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeUpstreamWeather, appErr.Code)
}

func TestProvider_RateLimitMapsTo429Code(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).Current(context.Background())
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeUpstreamRateLimit, appErr.Code)
}

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code int
		want types.SkyCondition
	}{
		{0, types.SkySunny},
		{1, types.SkyClear},
		{2, types.SkyPartlyCloudy},
		{3, types.SkyOvercast},
		{45, types.SkyFog},
		{48, types.SkyFog},
		{53, types.SkyLightRain},
		{61, types.SkyLightRain},
		{65, types.SkyHeavyRain},
		{95, types.SkyHeavyRain},
		{73, types.SkySnow},
		{86, types.SkySnow},
		{999, types.SkyOvercast},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, conditionFromCode(tt.code), "code %d", tt.code)
	}
}
