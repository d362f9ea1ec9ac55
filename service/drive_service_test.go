package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"outfit-assistant/models"
	"outfit-assistant/service"
)

const driveCSV = "Event,Season,Top\nOffice,Summer,https://drive.google.com/open?id=A\n"

func newDriveServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		media := r.URL.Query().Get("alt") == "media"
		switch {
		case r.URL.Path == "/files/uploaded" && media:
			_, _ = w.Write([]byte(driveCSV))
		case r.URL.Path == "/files/uploaded":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"uploaded","name":"outfits.csv","mimeType":"text/csv"}`))
		case r.URL.Path == "/files/sheet/export":
			require.Equal(t, "text/csv", r.URL.Query().Get("mimeType"))
			_, _ = w.Write([]byte(driveCSV))
		case r.URL.Path == "/files/sheet":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sheet","name":"Outfits","mimeType":"application/vnd.google-apps.spreadsheet"}`))
		case r.URL.Path == "/files/locked":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"File not found"}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDriveService(t *testing.T, srv *httptest.Server, fileID string) *service.DriveService {
	t.Helper()
	ds, err := service.NewDriveService(context.Background(), "", fileID,
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return ds
}

func TestDriveServiceReadTable(t *testing.T) {
	srv := newDriveServer(t)

	for _, fileID := range []string{"uploaded", "sheet"} {
		table, err := newTestDriveService(t, srv, fileID).ReadTable(context.Background())
		require.NoError(t, err, fileID)
		require.Equal(t, []string{"Event", "Season", "Top"}, table.Header)
		require.Equal(t, [][]string{{"Office", "Summer", "https://drive.google.com/open?id=A"}}, table.Rows)
	}
}

func TestDriveServiceMissingFile(t *testing.T) {
	srv := newDriveServer(t)

	_, err := newTestDriveService(t, srv, "nope").ReadTable(context.Background())
	require.Equal(t, models.ReasonSourceMissing, models.ReasonOf(err))
}

func TestDriveServiceAccessErrorIsUnreadable(t *testing.T) {
	srv := newDriveServer(t)

	_, err := newTestDriveService(t, srv, "locked").ReadTable(context.Background())
	require.Equal(t, models.ReasonSourceUnreadable, models.ReasonOf(err))

	srv.Close()
	_, err = newTestDriveService(t, srv, "uploaded").ReadTable(context.Background())
	require.Equal(t, models.ReasonSourceUnreadable, models.ReasonOf(err))
}

func TestNewDriveServiceRequiresFileID(t *testing.T) {
	_, err := service.NewDriveService(context.Background(), "", "")
	require.Error(t, err)
}
