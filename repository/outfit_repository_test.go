package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-assistant/db"
	"outfit-assistant/models"
	"outfit-assistant/repository"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set
func TestOutfitRepositoryRoundTrip(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	conn, err := db.Open(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	repo := repository.NewOutfitRepository(conn)
	require.NoError(t, repo.EnsureSchema(ctx))

	inserted, err := repo.ReplaceAll(ctx, []models.OutfitRecord{
		{Event: "office", Season: "summer", Gender: "female", Skin: "fair", Topwear: "https://drive.google.com/uc?export=view&id=A"},
		{Event: "party", Season: "winter"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, inserted)

	table, err := repo.ReadTable(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"event", "season", "gender", "skin", "topwear", "bottomwear", "footwear", "accessories"}, table.Header)
	require.Len(t, table.Rows, 2)
	require.Equal(t, "office", table.Rows[0][0])
	require.Equal(t, "https://drive.google.com/uc?export=view&id=A", table.Rows[0][4])

	// a second sync replaces rather than appends
	inserted, err = repo.ReplaceAll(ctx, []models.OutfitRecord{{Event: "trip"}})
	require.NoError(t, err)
	require.Equal(t, 1, inserted)
	table, err = repo.ReadTable(ctx)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
}

func TestOpenRejectsEmptyConnectionString(t *testing.T) {
	_, err := db.Open(context.Background(), "")
	require.Error(t, err)
}
