package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"outfit-assistant/app/controller"
	"outfit-assistant/app/router"
	"outfit-assistant/config"
	"outfit-assistant/db"
	"outfit-assistant/repository"
	"outfit-assistant/service"
)

// App holds the wired HTTP handler and the resources to release on shutdown
type App struct {
	Handler http.Handler
	db      *sql.DB
}

// Close releases the database connection if one was opened
func (a *App) Close() error {
	return db.Close(a.db)
}

// newCatalogSource builds the catalog source selected by cfg
func newCatalogSource(ctx context.Context, cfg config.Config, outfitRepo *repository.OutfitRepository) (repository.CatalogSourceInterface, error) {
	switch cfg.CatalogSource {
	case config.SourceDrive:
		return service.NewDriveService(ctx, cfg.CredentialsPath, cfg.CatalogSheetID)
	case config.SourcePostgres:
		if outfitRepo == nil {
			return nil, fmt.Errorf("postgres catalog source requires DATABASE_URL")
		}
		return outfitRepo, nil
	default:
		return repository.NewCSVCatalogSource(cfg.DatasetFile), nil
	}
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	// Initialize database connection when configured
	var outfitRepo *repository.OutfitRepository
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = conn
		outfitRepo = repository.NewOutfitRepository(conn)
		if err := outfitRepo.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	source, err := newCatalogSource(ctx, cfg, outfitRepo)
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Info().Str("source", cfg.CatalogSource).Msg("📚 Catalog source configured")

	if cfg.WeatherAPIKey == "" {
		log.Warn().Msg("⚠️  WEATHER_API_KEY is not set, season will default to summer")
	}

	// Initialize services
	loader := service.NewCatalogLoader(source)
	weather := service.NewOpenWeatherService(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.HTTPTimeout)
	geolocation := service.NewGeolocationService(cfg.GeoBaseURL, cfg.HTTPTimeout)
	classifier := service.NewSeasonClassifier(weather, nil)
	matcher := service.NewOutfitMatcher(loader, nil)
	composer := service.NewResponseComposer(nil)
	assistant := service.NewAssistantService(classifier, geolocation, matcher, composer)
	lookbook := service.NewLookbookService(cfg.ChromePath, cfg.LookbookTimeout)
	images := service.NewImageService(cfg.HTTPTimeout)

	// Create controllers
	controllers := &router.Controllers{
		Chat:  controller.NewChatController(assistant, lookbook),
		Image: controller.NewImageController(images),
	}

	// Syncing into Postgres from Postgres itself makes no sense
	if outfitRepo != nil && cfg.CatalogSource != config.SourcePostgres {
		syncService := service.NewSyncService(loader, outfitRepo)
		controllers.Catalog = controller.NewCatalogController(syncService)
	}

	a.Handler = router.SetupRoutes(controllers, cfg.StaticDir, cfg.TrustProxy)
	return a, nil
}
