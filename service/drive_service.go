package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"outfit-assistant/models"
	"outfit-assistant/repository"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// DriveService reads the outfit spreadsheet from Google Drive.
// Native Google Sheets are exported as CSV, uploaded CSV files are downloaded as is.
// Implements repository.CatalogSourceInterface
type DriveService struct {
	client *drive.Service
	fileID string
}

// NewDriveService creates a new DriveService for the given file.
// credentialsPath should be the path to the Service Account JSON file.
// Extra client options are appended after the credentials option.
func NewDriveService(ctx context.Context, credentialsPath, fileID string, opts ...option.ClientOption) (*DriveService, error) {
	if fileID == "" {
		return nil, fmt.Errorf("drive catalog file id is empty. Set CATALOG_SHEET_ID")
	}

	var clientOpts []option.ClientOption
	if credentialsPath != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsPath))
	}
	clientOpts = append(clientOpts, option.WithScopes(drive.DriveReadonlyScope))
	clientOpts = append(clientOpts, opts...)

	driveService, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
		fileID: fileID,
	}, nil
}

// Ensure DriveService implements repository.CatalogSourceInterface
var _ repository.CatalogSourceInterface = (*DriveService)(nil)

// ReadTable fetches the spreadsheet and parses it as CSV
func (ds *DriveService) ReadTable(ctx context.Context) (*models.CatalogTable, error) {
	logger := zerolog.Ctx(ctx)

	file, err := ds.client.Files.Get(ds.fileID).
		Fields("id, name, mimeType").
		Context(ctx).
		Do()
	if err != nil {
		reason := models.ReasonSourceUnreadable
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			reason = models.ReasonSourceMissing
		}
		return nil, models.NewFailure(reason, fmt.Errorf("failed to get drive file %s: %w", ds.fileID, err))
	}

	var resp *http.Response
	if file.MimeType == spreadsheetMimeType {
		resp, err = ds.client.Files.Export(ds.fileID, "text/csv").Context(ctx).Download()
	} else {
		resp, err = ds.client.Files.Get(ds.fileID).Context(ctx).Download()
	}
	if err != nil {
		return nil, models.NewFailure(models.ReasonSourceUnreadable, fmt.Errorf("failed to download drive file %s: %w", ds.fileID, err))
	}
	defer resp.Body.Close()

	table, err := repository.ParseCSVTable(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug().Msgf("📦 Read %d rows from drive file %s (%s)", len(table.Rows), file.Name, file.MimeType)
	return table, nil
}
