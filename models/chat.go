package models

import "time"

// ChatRequest represents the request body for POST /chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the response body for POST /chat
type ChatResponse struct {
	Reply string `json:"reply"`
	HTML  string `json:"html"`
}

// ChatIntent holds the fields extracted from a free-text message.
// Empty strings mean the field was not found.
type ChatIntent struct {
	Event  string `json:"event"`
	Gender string `json:"gender"`
	Skin   string `json:"skin"`
	Date   string `json:"date"`
	City   string `json:"city"`
}

// ChatContext is the resolved request context echoed back in the summary
type ChatContext struct {
	Event  string
	Season string
	Gender string
	Skin   string
	City   string
}

// OutfitSlot is one image position of an outfit block
type OutfitSlot struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl,omitempty"`
	Missing  bool   `json:"missing"`
}

// OutfitBlock is the display form of one selected outfit
type OutfitBlock struct {
	Index int          `json:"index"`
	Slots []OutfitSlot `json:"slots"`
}

// OutfitBoard is the display structure produced by the response composer
type OutfitBoard struct {
	Blocks []OutfitBlock `json:"blocks"`
}

// ForecastEntry is a single point of a multi-point weather forecast
type ForecastEntry struct {
	Time        time.Time
	Temperature float64
}

// CatalogSyncResult represents the response of POST /admin/catalog/sync
type CatalogSyncResult struct {
	Status   string `json:"status"`
	Total    int    `json:"total"`
	Inserted int    `json:"inserted"`
}
