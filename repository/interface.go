package repository

import (
	"context"

	"outfit-assistant/models"
)

// CatalogSourceInterface defines the contract for reading the raw outfit table
type CatalogSourceInterface interface {
	ReadTable(ctx context.Context) (*models.CatalogTable, error)
}

// OutfitRepositoryInterface defines the contract for the outfits table
type OutfitRepositoryInterface interface {
	CatalogSourceInterface
	ReplaceAll(ctx context.Context, records []models.OutfitRecord) (int, error)
}
