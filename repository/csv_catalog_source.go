package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
)

// CSVCatalogSource reads the outfit table from a CSV file on disk
// Implements CatalogSourceInterface
type CSVCatalogSource struct {
	path string
}

// NewCSVCatalogSource creates a new CSVCatalogSource for the given file path
func NewCSVCatalogSource(path string) *CSVCatalogSource {
	return &CSVCatalogSource{path: path}
}

// Ensure CSVCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CSVCatalogSource)(nil)

// ReadTable opens the CSV file and parses it into a header and data rows.
// The file is read fresh on every call.
func (s *CSVCatalogSource) ReadTable(ctx context.Context) (*models.CatalogTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.NewFailure(models.ReasonSourceMissing, fmt.Errorf("csv file '%s' not found", s.path))
		}
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to open csv file: %w", err))
	}
	defer f.Close()

	table, err := ParseCSVTable(f)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Msgf("📄 Read %d rows from %s", len(table.Rows), s.path)
	return table, nil
}

// ParseCSVTable parses CSV content whose first record is the header row.
// Blank lines are skipped and rows may have fewer or more cells than the header.
func ParseCSVTable(r io.Reader) (*models.CatalogTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, models.NewFailure(models.ReasonMissingHeaders, errors.New("csv missing headers"))
	}
	if err != nil {
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to read csv header: %w", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &models.CatalogTable{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to read csv row: %w", err))
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}
