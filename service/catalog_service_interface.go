package service

import (
	"context"

	"outfit-assistant/models"
)

// CatalogLoaderInterface defines the contract for loading the outfit catalog
type CatalogLoaderInterface interface {
	Load(ctx context.Context) ([]models.OutfitRecord, error)
	LoadOrEmpty(ctx context.Context) []models.OutfitRecord
}

// OutfitMatcherInterface defines the contract for selecting outfits for a query
type OutfitMatcherInterface interface {
	Match(query models.FilterQuery, catalog []models.OutfitRecord) ([]models.OutfitRecord, error)
	FindOutfits(ctx context.Context, query models.FilterQuery) []models.OutfitRecord
}

// SyncServiceInterface defines the contract for copying the catalog into Postgres
type SyncServiceInterface interface {
	// SyncCatalog returns total = records read from the source, inserted = rows written
	SyncCatalog(ctx context.Context) (total int, inserted int, err error)
}
