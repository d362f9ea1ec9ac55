package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"outfit-assistant/repository"
)

// SyncService copies the configured catalog source into the Postgres outfits table
// Implements SyncServiceInterface
type SyncService struct {
	loader     CatalogLoaderInterface
	repository repository.OutfitRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(loader CatalogLoaderInterface, repo repository.OutfitRepositoryInterface) *SyncService {
	return &SyncService{
		loader:     loader,
		repository: repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncCatalog loads the source catalog and replaces the table with it.
// A failing or empty source leaves the table untouched.
func (s *SyncService) SyncCatalog(ctx context.Context) (total int, inserted int, err error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("🔄 Starting catalog synchronization")

	records, err := s.loader.Load(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load catalog source: %w", err)
	}
	total = len(records)
	if total == 0 {
		return 0, 0, errors.New("catalog source returned no outfits")
	}

	logger.Info().Msgf("📦 Processing %d outfits from catalog source", total)

	inserted, err = s.repository.ReplaceAll(ctx, records)
	if err != nil {
		return total, 0, fmt.Errorf("failed to store outfits: %w", err)
	}

	logger.Info().Msgf("🎉 Synchronization completed successfully: %d inserted, %d total processed", inserted, total)
	return total, inserted, nil
}
