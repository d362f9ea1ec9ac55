package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"outfit-assistant/models"
	"outfit-assistant/service"
)

func newWeatherServer(t *testing.T, handler http.HandlerFunc) *service.OpenWeatherService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return service.NewOpenWeatherService(srv.URL, "secret", 2*time.Second)
}

func TestCurrentTemperature(t *testing.T) {
	weather := newWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		require.Equal(t, "New Delhi", r.URL.Query().Get("q"))
		require.Equal(t, "secret", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"New Delhi","main":{"temp":31.4,"humidity":40}}`))
	})

	temp, err := weather.CurrentTemperature(context.Background(), "New Delhi")
	require.NoError(t, err)
	require.InDelta(t, 31.4, temp, 0.001)
}

func TestCurrentTemperatureFailures(t *testing.T) {
	ctx := context.Background()

	notFound := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	})
	_, err := notFound.CurrentTemperature(ctx, "Atlantis")
	require.Equal(t, models.ReasonWeatherUnavailable, models.ReasonOf(err))

	garbage := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	_, err = garbage.CurrentTemperature(ctx, "Paris")
	require.Equal(t, models.ReasonWeatherUnavailable, models.ReasonOf(err))

	noTemp := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{}}`))
	})
	_, err = noTemp.CurrentTemperature(ctx, "Paris")
	require.Equal(t, models.ReasonNoWeatherData, models.ReasonOf(err))

	unreachable := service.NewOpenWeatherService("http://127.0.0.1:1", "k", time.Second)
	_, err = unreachable.CurrentTemperature(ctx, "Paris")
	require.Equal(t, models.ReasonWeatherUnavailable, models.ReasonOf(err))
}

func TestForecast(t *testing.T) {
	weather := newWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/forecast", r.URL.Path)
		_, _ = w.Write([]byte(`{"list":[
			{"dt":1710028800,"main":{"temp":12.5}},
			{"dt":1710039600,"main":{"temp":18}}
		]}`))
	})

	entries, err := weather.Forecast(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(1710028800), entries[0].Time.Unix())
	require.InDelta(t, 12.5, entries[0].Temperature, 0.001)
	require.InDelta(t, 18.0, entries[1].Temperature, 0.001)
}

func TestForecastFailures(t *testing.T) {
	ctx := context.Background()

	malformed := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"list":[{"dt":1710028800,"main":{"temp":12}},{"main":{"temp":3}}]}`))
	})
	_, err := malformed.Forecast(ctx, "Paris")
	require.Equal(t, models.ReasonNoWeatherData, models.ReasonOf(err))

	empty := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"list":[]}`))
	})
	entries, err := empty.Forecast(ctx, "Paris")
	require.NoError(t, err)
	require.Empty(t, entries)

	failing := newWeatherServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err = failing.Forecast(ctx, "Paris")
	require.Equal(t, models.ReasonWeatherUnavailable, models.ReasonOf(err))
}
