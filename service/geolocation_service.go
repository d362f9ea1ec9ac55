package service

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"outfit-assistant/models"
)

// DefaultGeoBaseURL is the ipinfo.io API root
const DefaultGeoBaseURL = "https://ipinfo.io"

// GeolocationService resolves an approximate city from a network address via ipinfo.io
// Implements GeolocationServiceInterface
type GeolocationService struct {
	client *resty.Client
}

// NewGeolocationService creates a new GeolocationService
func NewGeolocationService(baseURL string, timeout time.Duration) *GeolocationService {
	if baseURL == "" {
		baseURL = DefaultGeoBaseURL
	}
	return &GeolocationService{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

// Ensure GeolocationService implements GeolocationServiceInterface
var _ GeolocationServiceInterface = (*GeolocationService)(nil)

// isPublicIP reports whether ip can be located by an external service
func isPublicIP(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return false
	}
	return !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified() && !parsed.IsLinkLocalUnicast()
}

// LookupCity returns the city for ip. Private or unknown addresses fall back
// to locating the server's own address.
func (s *GeolocationService) LookupCity(ctx context.Context, ip string) (string, error) {
	path := "/json"
	if isPublicIP(ip) {
		path = "/" + strings.TrimSpace(ip) + "/json"
	}

	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return "", models.NewFailure(models.ReasonGeolocationFailed, fmt.Errorf("failed to call geolocation api: %w", err))
	}
	if resp.IsError() {
		return "", models.NewFailure(models.ReasonGeolocationFailed, fmt.Errorf("geolocation api returned status %d", resp.StatusCode()))
	}

	city := strings.TrimSpace(gjson.GetBytes(resp.Body(), "city").String())
	if city == "" {
		return "", models.NewFailure(models.ReasonGeolocationFailed, fmt.Errorf("geolocation response has no city"))
	}
	return city, nil
}

// LookupCityOrEmpty is the fail-open form of LookupCity
func LookupCityOrEmpty(ctx context.Context, geo GeolocationServiceInterface, ip string) string {
	if geo == nil {
		return ""
	}
	city, err := geo.LookupCity(ctx, ip)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("⚠️  Location error")
		return ""
	}
	return city
}
