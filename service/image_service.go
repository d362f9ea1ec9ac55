package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrImageHostNotAllowed is returned for sources outside the catalog image hosts
var ErrImageHostNotAllowed = errors.New("image host not allowed")

// ErrImageTooLarge is returned when the image body or its pixel count exceeds the limits
var ErrImageTooLarge = errors.New("image too large")

const (
	maxImageBytes     = 20 << 20
	maxImageRedirects = 5
)

// Hosts that normalized catalog links point to
var allowedImageHosts = []string{
	"drive.google.com",
	"googleusercontent.com",
	"dropbox.com",
	"dropboxusercontent.com",
}

// ImageService fetches catalog images and returns resized JPEG thumbnails
// Implements ImageServiceInterface
type ImageService struct {
	client       *resty.Client
	allowedHosts []string
}

// NewImageService creates a new ImageService. Extra hosts extend the allowlist.
func NewImageService(timeout time.Duration, extraHosts ...string) *ImageService {
	s := &ImageService{
		allowedHosts: append(append([]string{}, allowedImageHosts...), extraHosts...),
	}
	s.client = resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(s.checkRedirect))
	return s
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

func (s *ImageService) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, h := range s.allowedHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// checkRedirect applies the scheme and host allowlist to every redirect hop
func (s *ImageService) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxImageRedirects {
		return fmt.Errorf("stopped after %d redirects", maxImageRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("invalid redirect scheme %q", req.URL.Scheme)
	}
	if !s.hostAllowed(req.URL.Hostname()) {
		return fmt.Errorf("%w: %s", ErrImageHostNotAllowed, req.URL.Hostname())
	}
	return nil
}

// Thumbnail downloads src and optimizes it for the requested size
func (s *ImageService) Thumbnail(ctx context.Context, src string, size string) ([]byte, error) {
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid image url %q", src)
	}
	if !s.hostAllowed(u.Hostname()) {
		return nil, fmt.Errorf("%w: %s", ErrImageHostNotAllowed, u.Hostname())
	}

	zerolog.Ctx(ctx).Debug().Msgf("📥 Fetching outfit image %s", u.String())
	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode())
	}
	if resp.RawResponse.ContentLength > maxImageBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, resp.RawResponse.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, maxImageBytes)
	}

	return OptimizeImage(data, size)
}
