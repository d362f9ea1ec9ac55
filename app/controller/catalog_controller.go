package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
	"outfit-assistant/service"
)

// CatalogController handles admin HTTP requests for the outfit catalog
type CatalogController struct {
	syncService service.SyncServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(syncService service.SyncServiceInterface) *CatalogController {
	return &CatalogController{syncService: syncService}
}

// Sync handles POST /admin/catalog/sync
// Copies the configured catalog source into the Postgres outfits table
func (c *CatalogController) Sync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	total, inserted, err := c.syncService.SyncCatalog(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("❌ Catalog sync failed")
		http.Error(w, fmt.Sprintf("Failed to sync catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.CatalogSyncResult{
		Status:   "success",
		Total:    total,
		Inserted: inserted,
	})
}
