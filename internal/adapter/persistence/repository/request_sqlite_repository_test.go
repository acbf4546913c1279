package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) *RequestSQLiteRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "requests.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo, err := NewRequestSQLiteRepository(context.Background(), db, nil)
	require.NoError(t, err)
	return repo
}

func TestRequestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 9, 17, 30, 0, 0, time.UTC)

	t.Run("empty table", func(t *testing.T) {
		got, err := newTestSQLiteRepository(t).Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("round trip in insertion order", func(t *testing.T) {
		repo := newTestSQLiteRepository(t)
		first := sampleRequest(base.Add(time.Hour))
		second := sampleRequest(base)
		second.ServiceDetails.Category = entities.CategoryInstallation
		second.ServiceDetails.Type = "Water Heater Installation"
		second.PhotoUploaded = false

		require.NoError(t, repo.Append(ctx, first))
		require.NoError(t, repo.Append(ctx, second))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.RequestID, got[0].RequestID)
		assert.True(t, got[0].Timestamp.Equal(first.Timestamp))
		assert.Equal(t, first.CustomerInfo, got[0].CustomerInfo)
		assert.Equal(t, first.ServiceDetails, got[0].ServiceDetails)
		assert.True(t, got[0].PhotoUploaded)
		assert.Equal(t, second.ServiceDetails, got[1].ServiceDetails)
		assert.False(t, got[1].PhotoUploaded)
	})

	t.Run("same request id is kept twice", func(t *testing.T) {
		repo := newTestSQLiteRepository(t)
		first := sampleRequest(base)
		second := sampleRequest(base)
		second.CustomerInfo.FullName = "John Roe"
		require.NoError(t, repo.Append(ctx, first))
		require.NoError(t, repo.Append(ctx, second))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.RequestID, got[1].RequestID)
		assert.Equal(t, "John Roe", got[1].CustomerInfo.FullName)
	})
}
