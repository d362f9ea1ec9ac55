package service

import (
	"context"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
	"outfit-assistant/repository"
	"outfit-assistant/utils"
)

// CatalogLoader reads the outfit catalog from a source and canonicalizes it
// Implements CatalogLoaderInterface
type CatalogLoader struct {
	source repository.CatalogSourceInterface
}

// NewCatalogLoader creates a new CatalogLoader
func NewCatalogLoader(source repository.CatalogSourceInterface) *CatalogLoader {
	return &CatalogLoader{source: source}
}

// Ensure CatalogLoader implements CatalogLoaderInterface
var _ CatalogLoaderInterface = (*CatalogLoader)(nil)

// Load reads the source and returns canonical outfit records.
// Errors are *models.Failure values; nothing is cached between calls.
func (l *CatalogLoader) Load(ctx context.Context) ([]models.OutfitRecord, error) {
	table, err := l.source.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	return CanonicalizeTable(table), nil
}

// LoadOrEmpty is the fail-open form of Load: any failure is logged and
// an empty catalog is returned
func (l *CatalogLoader) LoadOrEmpty(ctx context.Context) []models.OutfitRecord {
	records, err := l.Load(ctx)
	if err != nil {
		logger := zerolog.Ctx(ctx)
		if models.ReasonOf(err) == models.ReasonMissingHeaders {
			logger.Warn().Err(err).Msg("⚠️  Catalog has no header row, using empty catalog")
		} else {
			logger.Error().Err(err).Str("reason", string(models.ReasonOf(err))).Msg("❌ Catalog load error, using empty catalog")
		}
		return []models.OutfitRecord{}
	}
	return records
}

// CanonicalizeTable maps headers to canonical keys and normalizes every cell.
// Columns with an empty header are dropped; when two columns map to the same
// key the later one wins. Missing cells are treated as empty.
func CanonicalizeTable(table *models.CatalogTable) []models.OutfitRecord {
	if table == nil {
		return []models.OutfitRecord{}
	}

	keys := make([]string, len(table.Header))
	for i, h := range table.Header {
		keys[i] = utils.MapHeaderToField(h)
	}

	records := make([]models.OutfitRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		var rec models.OutfitRecord
		for i, key := range keys {
			if key == "" {
				continue
			}
			var raw string
			if i < len(row) {
				raw = row[i]
			}
			rec.Set(key, utils.NormalizeCellValue(key, raw))
		}
		records = append(records, rec)
	}
	return records
}
