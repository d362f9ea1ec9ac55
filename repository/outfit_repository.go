package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
)

const createOutfitsTable = `
	CREATE TABLE IF NOT EXISTS outfits (
		id          BIGSERIAL PRIMARY KEY,
		event       TEXT NOT NULL DEFAULT '',
		season      TEXT NOT NULL DEFAULT '',
		gender      TEXT NOT NULL DEFAULT '',
		skin        TEXT NOT NULL DEFAULT '',
		topwear     TEXT NOT NULL DEFAULT '',
		bottomwear  TEXT NOT NULL DEFAULT '',
		footwear    TEXT NOT NULL DEFAULT '',
		accessories TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// OutfitRepository handles database operations for the outfits table
// Implements OutfitRepositoryInterface
type OutfitRepository struct {
	db *sql.DB
}

// NewOutfitRepository creates a new OutfitRepository
func NewOutfitRepository(db *sql.DB) *OutfitRepository {
	return &OutfitRepository{db: db}
}

// Ensure OutfitRepository implements OutfitRepositoryInterface
var _ OutfitRepositoryInterface = (*OutfitRepository)(nil)

// EnsureSchema creates the outfits table if it does not exist
func (r *OutfitRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOutfitsTable); err != nil {
		return fmt.Errorf("failed to create outfits table: %w", err)
	}
	return nil
}

// ReadTable reads every outfit row in insertion order.
// Column names come from the result set so they go through the same
// header canonicalization as a spreadsheet export.
func (r *OutfitRepository) ReadTable(ctx context.Context) (*models.CatalogTable, error) {
	query := `
		SELECT event, season, gender, skin, topwear, bottomwear, footwear, accessories
		FROM outfits
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to query outfits: %w", err))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to read columns: %w", err))
	}
	if len(columns) == 0 {
		return nil, models.NewFailure(models.ReasonMissingHeaders, fmt.Errorf("outfits query returned no columns"))
	}

	table := &models.CatalogTable{Header: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("❌ Error scanning outfit row")
			continue
		}

		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = v.String
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to iterate outfits: %w", err))
	}

	zerolog.Ctx(ctx).Debug().Msgf("✓ Fetched %d outfits from database", len(table.Rows))
	return table, nil
}

// ReplaceAll swaps the table content for records inside one transaction.
// Returns the number of inserted rows.
func (r *OutfitRepository) ReplaceAll(ctx context.Context, records []models.OutfitRecord) (int, error) {
	logger := zerolog.Ctx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM outfits`); err != nil {
		return 0, fmt.Errorf("failed to clear outfits: %w", err)
	}

	insert := `
		INSERT INTO outfits (event, season, gender, skin, topwear, bottomwear, footwear, accessories)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			rec.Event, rec.Season, rec.Gender, rec.Skin,
			rec.Topwear, rec.Bottomwear, rec.Footwear, rec.Accessories,
		); err != nil {
			return 0, fmt.Errorf("failed to insert outfit: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info().Msgf("💾 Replaced outfits table with %d rows", inserted)
	return inserted, nil
}
