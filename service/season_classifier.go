package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
)

const dateLayout = "2006-01-02"

// Temperature thresholds in Celsius, both inclusive
const (
	summerMinTemp = 25.0
	winterMaxTemp = 15.0
)

// SeasonClassifier maps a city and optional date to a season bucket
// Implements SeasonClassifierInterface
type SeasonClassifier struct {
	weather  WeatherServiceInterface
	location *time.Location
}

// NewSeasonClassifier creates a new SeasonClassifier.
// loc is used to read forecast timestamps as calendar dates; nil means time.Local.
func NewSeasonClassifier(weather WeatherServiceInterface, loc *time.Location) *SeasonClassifier {
	if loc == nil {
		loc = time.Local
	}
	return &SeasonClassifier{
		weather:  weather,
		location: loc,
	}
}

// Ensure SeasonClassifier implements SeasonClassifierInterface
var _ SeasonClassifierInterface = (*SeasonClassifier)(nil)

// SeasonFromTemperature buckets a temperature: >= 25 summer, <= 15 winter, rainy in between
func SeasonFromTemperature(temp float64) string {
	switch {
	case temp >= summerMinTemp:
		return models.SeasonSummer
	case temp <= winterMaxTemp:
		return models.SeasonWinter
	default:
		return models.SeasonRainy
	}
}

// Classify looks up the temperature for city (current, or forecast when date is set)
// and returns its season. Every failure is a *models.Failure and no season is returned.
func (c *SeasonClassifier) Classify(ctx context.Context, city, date string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", models.NewFailure(models.ReasonNoCity, nil)
	}

	date = strings.TrimSpace(date)
	if date == "" {
		temp, err := c.weather.CurrentTemperature(ctx, city)
		if err != nil {
			return "", err
		}
		return SeasonFromTemperature(temp), nil
	}

	target, err := time.ParseInLocation(dateLayout, date, c.location)
	if err != nil {
		return "", models.NewFailure(models.ReasonInvalidDate, fmt.Errorf("invalid date %q: %w", date, err))
	}

	entries, err := c.weather.Forecast(ctx, city)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", models.NewFailure(models.ReasonNoWeatherData, fmt.Errorf("empty forecast for %s", city))
	}

	temp := entries[0].Temperature
	for _, e := range entries {
		if sameDay(e.Time.In(c.location), target) {
			temp = e.Temperature
			break
		}
	}
	return SeasonFromTemperature(temp), nil
}

// ClassifyOrDefault is the fail-open form of Classify: any failure yields summer
func (c *SeasonClassifier) ClassifyOrDefault(ctx context.Context, city, date string) string {
	season, err := c.Classify(ctx, city, date)
	if err != nil {
		logger := zerolog.Ctx(ctx)
		if models.ReasonOf(err) == models.ReasonNoCity {
			logger.Debug().Msg("No city given, defaulting season to summer")
		} else {
			logger.Warn().Err(err).Str("city", city).Str("date", date).Msg("⚠️  Weather error, defaulting season to summer")
		}
		return models.SeasonSummer
	}
	return season
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
