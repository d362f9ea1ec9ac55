package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"outfit-assistant/service"
)

// ImageController handles HTTP requests for outfit thumbnails
type ImageController struct {
	images service.ImageServiceInterface
}

// NewImageController creates a new ImageController
func NewImageController(images service.ImageServiceInterface) *ImageController {
	return &ImageController{images: images}
}

// GetOutfitImage handles GET /outfits/image?src=<url>&size=thumb|medium
func (c *ImageController) GetOutfitImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	src := strings.TrimSpace(r.URL.Query().Get("src"))
	if src == "" {
		http.Error(w, "src parameter is required", http.StatusBadRequest)
		return
	}
	size := r.URL.Query().Get("size")
	if size == "" {
		size = service.SizeThumb
	}

	data, err := c.images.Thumbnail(r.Context(), src, size)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("src", src).Msg("⚠️  Thumbnail failed")
		if errors.Is(err, service.ErrImageHostNotAllowed) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to get image: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
