package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-assistant/models"
)

type fakeWeather struct {
	current     float64
	currentErr  error
	forecast    []models.ForecastEntry
	forecastErr error

	currentCalls  []string
	forecastCalls []string
}

func (f *fakeWeather) CurrentTemperature(_ context.Context, city string) (float64, error) {
	f.currentCalls = append(f.currentCalls, city)
	return f.current, f.currentErr
}

func (f *fakeWeather) Forecast(_ context.Context, city string) ([]models.ForecastEntry, error) {
	f.forecastCalls = append(f.forecastCalls, city)
	return f.forecast, f.forecastErr
}

type fakeGeolocation struct {
	city  string
	err   error
	calls []string
}

func (f *fakeGeolocation) LookupCity(_ context.Context, ip string) (string, error) {
	f.calls = append(f.calls, ip)
	return f.city, f.err
}

type fakeSource struct {
	table *models.CatalogTable
	err   error
}

func (f *fakeSource) ReadTable(context.Context) (*models.CatalogTable, error) {
	return f.table, f.err
}

type fakeOutfitRepository struct {
	fakeSource
	stored    []models.OutfitRecord
	replaceFn func([]models.OutfitRecord) (int, error)
}

func (f *fakeOutfitRepository) ReplaceAll(_ context.Context, records []models.OutfitRecord) (int, error) {
	if f.replaceFn != nil {
		return f.replaceFn(records)
	}
	f.stored = records
	return len(records), nil
}

// identityShuffle keeps input order so sampling takes the first k records
func identityShuffle(int, func(i, j int)) {}

// reverseShuffle reverses the input so tests can see that sampling happened
func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "images.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
