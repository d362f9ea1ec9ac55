package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-assistant/app/controller"
	"outfit-assistant/models"
)

func TestCatalogSync(t *testing.T) {
	ctrl := controller.NewCatalogController(&fakeSync{total: 12, inserted: 12})

	rec := httptest.NewRecorder()
	ctrl.Sync(rec, httptest.NewRequest(http.MethodPost, "/admin/catalog/sync", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CatalogSyncResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, models.CatalogSyncResult{Status: "success", Total: 12, Inserted: 12}, body)
}

func TestCatalogSyncErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.NewCatalogController(&fakeSync{}).Sync(rec, httptest.NewRequest(http.MethodGet, "/admin/catalog/sync", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	controller.NewCatalogController(&fakeSync{err: errors.New("catalog source returned no outfits")}).
		Sync(rec, httptest.NewRequest(http.MethodPost, "/admin/catalog/sync", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "no outfits")
}
