package service

import (
	"context"

	"outfit-assistant/models"
)

// WeatherServiceInterface defines the contract for temperature lookups in Celsius
type WeatherServiceInterface interface {
	CurrentTemperature(ctx context.Context, city string) (float64, error)
	Forecast(ctx context.Context, city string) ([]models.ForecastEntry, error)
}

// GeolocationServiceInterface defines the contract for resolving a caller's city
type GeolocationServiceInterface interface {
	LookupCity(ctx context.Context, ip string) (string, error)
}

// SeasonClassifierInterface defines the contract for season inference
type SeasonClassifierInterface interface {
	Classify(ctx context.Context, city, date string) (string, error)
	ClassifyOrDefault(ctx context.Context, city, date string) string
}
