package router

import (
	"net/http"
	"os"

	"outfit-assistant/app/controller"
	"outfit-assistant/app/middleware"
)

type Controllers struct {
	Chat    *controller.ChatController
	Image   *controller.ImageController
	Catalog *controller.CatalogController // nil when no database is configured
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes and returns the handler wrapped in request logging.
// staticDir is served at / when it exists. trustProxy enables X-Forwarded-For.
func SetupRoutes(controllers *Controllers, staticDir string, trustProxy bool) http.Handler {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Chat routes
	mux.HandleFunc("/chat", controllers.Chat.Chat)
	mux.HandleFunc("/chat/lookbook", controllers.Chat.Lookbook)

	// Outfit thumbnails
	mux.HandleFunc("/outfits/image", controllers.Image.GetOutfitImage)

	// Admin routes
	if controllers.Catalog != nil {
		mux.HandleFunc("/admin/catalog/sync", controllers.Catalog.Sync)
	}

	// Chat page and its scripts
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	return middleware.RequestLogger(trustProxy)(mux)
}
