package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStorage создает in-memory хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, storage.Close())
	})

	return storage
}

func TestNew_Success(t *testing.T) {
	storage := createTestStorage(t)

	assert.NotNil(t, storage.DB())
	assert.NotEmpty(t, storage.ServerDeviceID())
}

func TestNew_MigrationsApplied(t *testing.T) {
	storage := createTestStorage(t)

	// Все таблицы схемы должны существовать
	for _, table := range []string{"meta", "devices", "events"} {
		var name string
		err := storage.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestServerDeviceID_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "hub.db")

	first, err := New(ctx, dbPath)
	require.NoError(t, err)
	deviceID := first.ServerDeviceID()
	require.NotEmpty(t, deviceID)
	require.NoError(t, first.Close())

	second, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, deviceID, second.ServerDeviceID())
}
