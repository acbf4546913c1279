package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFileRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is empty", func(t *testing.T) {
		repo := NewRequestFileRepository(filepath.Join(t.TempDir(), "requests.json"), nil)
		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("blank file is empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))
		got, err := NewRequestFileRepository(path, nil).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("null document is empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))
		got, err := NewRequestFileRepository(path, nil).Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"request_id": `), 0o644))
		_, err := NewRequestFileRepository(path, nil).Load(ctx)
		assert.ErrorIs(t, err, interfaces.ErrStoreCorrupt)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewRequestFileRepository(filepath.Join(t.TempDir(), "requests.json"), nil).Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRequestFileRepository_Append(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 31, 9, 45, 0, 0, time.UTC)

	t.Run("appends in order and round trips", func(t *testing.T) {
		repo := NewRequestFileRepository(filepath.Join(t.TempDir(), "requests.json"), nil)
		first := sampleRequest(base)
		second := sampleRequest(base.Add(time.Second))
		second.ServiceDetails.Urgency = entities.UrgencyEmergency

		require.NoError(t, repo.Append(ctx, first))
		require.NoError(t, repo.Append(ctx, second))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "REQ20240131094500", got[0].RequestID)
		assert.Equal(t, "REQ20240131094501", got[1].RequestID)
		assert.True(t, got[0].Timestamp.Equal(first.Timestamp))
		assert.Equal(t, first.CustomerInfo, got[0].CustomerInfo)
		assert.Equal(t, entities.UrgencyEmergency, got[1].ServiceDetails.Urgency)
	})

	t.Run("pretty printed with two spaces", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		repo := NewRequestFileRepository(path, nil)
		require.NoError(t, repo.Append(ctx, sampleRequest(base)))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		text := string(raw)
		assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"customer_info\": {\n      \"full_name\": \"Jane Doe\""), text)
		assert.Contains(t, text, `"preliminary_price_range": "$75 - $250"`)
		assert.Contains(t, text, `"request_id": "REQ20240131094500"`)
		assert.Contains(t, text, `"timestamp": "2024-01-31T09:45:00Z"`)
	})

	t.Run("corrupt store is not overwritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		corrupt := []byte(`{"not": "an array"`)
		require.NoError(t, os.WriteFile(path, corrupt, 0o644))

		err := NewRequestFileRepository(path, nil).Append(ctx, sampleRequest(base))
		assert.ErrorIs(t, err, interfaces.ErrStoreCorrupt)

		raw, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, corrupt, raw)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewRequestFileRepository(filepath.Join(dir, "requests.json"), nil)
		require.NoError(t, repo.Append(ctx, sampleRequest(base)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "requests.json", entries[0].Name())
	})

	t.Run("concurrent appends keep every record", func(t *testing.T) {
		repo := NewRequestFileRepository(filepath.Join(t.TempDir(), "requests.json"), nil)

		const n = 20
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r := sampleRequest(base.Add(time.Duration(i) * time.Second))
				r.CustomerInfo.FullName = fmt.Sprintf("customer-%d", i)
				errs <- repo.Append(ctx, r)
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, n)
	})
}

func TestRequestFileRepository_Init(t *testing.T) {
	t.Run("creates empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "requests.json")
		repo := NewRequestFileRepository(path, nil)
		require.NoError(t, repo.Init())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(raw))
	})

	t.Run("keeps existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "requests.json")
		repo := NewRequestFileRepository(path, nil)
		require.NoError(t, repo.Append(context.Background(), sampleRequest(time.Now().UTC())))
		require.NoError(t, repo.Init())

		got, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, "service_requests.json", NewRequestFileRepository("", nil).Path())
	})
}
