package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"outfit-assistant/models"
)

// DefaultWeatherBaseURL is the OpenWeatherMap API root
const DefaultWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherService queries OpenWeatherMap for current and forecast temperatures
// Implements WeatherServiceInterface
type OpenWeatherService struct {
	client *resty.Client
	apiKey string
}

// NewOpenWeatherService creates a new OpenWeatherService.
// The API key is fixed at construction; timeout bounds every request.
func NewOpenWeatherService(baseURL, apiKey string, timeout time.Duration) *OpenWeatherService {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &OpenWeatherService{
		client: client,
		apiKey: apiKey,
	}
}

// Ensure OpenWeatherService implements WeatherServiceInterface
var _ WeatherServiceInterface = (*OpenWeatherService)(nil)

func (s *OpenWeatherService) get(ctx context.Context, path, city string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": s.apiKey,
			"units": "metric",
		}).
		Get(path)
	if err != nil {
		return nil, models.NewFailure(models.ReasonWeatherUnavailable, fmt.Errorf("failed to call weather api: %w", err))
	}
	if resp.IsError() {
		return nil, models.NewFailure(models.ReasonWeatherUnavailable, fmt.Errorf("weather api returned status %d", resp.StatusCode()))
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, models.NewFailure(models.ReasonWeatherUnavailable, fmt.Errorf("weather api returned invalid json"))
	}
	return body, nil
}

// CurrentTemperature returns the current temperature for city
func (s *OpenWeatherService) CurrentTemperature(ctx context.Context, city string) (float64, error) {
	body, err := s.get(ctx, "/data/2.5/weather", city)
	if err != nil {
		return 0, err
	}

	temp := gjson.GetBytes(body, "main.temp")
	if temp.Type != gjson.Number {
		return 0, models.NewFailure(models.ReasonNoWeatherData, fmt.Errorf("current weather for %s has no temperature", city))
	}
	return temp.Float(), nil
}

// Forecast returns the multi-point forecast for city in API order.
// A forecast entry without a timestamp or temperature fails the whole lookup.
func (s *OpenWeatherService) Forecast(ctx context.Context, city string) ([]models.ForecastEntry, error) {
	body, err := s.get(ctx, "/data/2.5/forecast", city)
	if err != nil {
		return nil, err
	}

	var (
		entries []models.ForecastEntry
		bad     error
	)
	gjson.GetBytes(body, "list").ForEach(func(_, entry gjson.Result) bool {
		dt := entry.Get("dt")
		temp := entry.Get("main.temp")
		if dt.Type != gjson.Number || temp.Type != gjson.Number {
			bad = models.NewFailure(models.ReasonNoWeatherData, fmt.Errorf("malformed forecast entry for %s", city))
			return false
		}
		entries = append(entries, models.ForecastEntry{
			Time:        time.Unix(dt.Int(), 0),
			Temperature: temp.Float(),
		})
		return true
	})
	if bad != nil {
		return nil, bad
	}

	return entries, nil
}
