package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/scopekeeper/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	auth := &storage.AuthData{
		ServerURL:      "https://hub.example.com",
		DeviceName:     "laptop",
		LocalDeviceID:  "device-local",
		ServerDeviceID: "device-hub",
		AccessToken:    "access-token",
		ExpiresAt:      time.Now().Add(time.Hour).Unix(),
	}

	// Проверяем что GetAuth до сохранения выдаст ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Сохраняем auth
	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	// Получаем auth и сравниваем
	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.ServerURL, got.ServerURL)
	assert.Equal(t, auth.DeviceName, got.DeviceName)
	assert.Equal(t, auth.LocalDeviceID, got.LocalDeviceID)
	assert.Equal(t, auth.ServerDeviceID, got.ServerDeviceID)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.ExpiresAt, got.ExpiresAt)

	// IsPaired должна вернуть true (токен не просрочен)
	paired, err := store.IsPaired(ctx)
	require.NoError(t, err)
	assert.True(t, paired)

	// Обновляем auth с истекшим токеном
	auth.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	paired, err = store.IsPaired(ctx)
	require.NoError(t, err)
	assert.False(t, paired)

	// Удаляем auth
	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	// После удаления GetAuth должен вернуть ErrAuthNotFound
	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Удаление уже отсутствующего auth — ошибка
	err = store.DeleteAuth(ctx)
	assert.Error(t, err)
}

func TestStorage_IsPaired_NotPaired(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Если auth не существует, IsPaired должна вернуть false, nil (не ошибку)
	paired, err := store.IsPaired(ctx)
	require.NoError(t, err)
	assert.False(t, paired)
}

func TestStorage_Auth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Для теста удалим bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	})
	require.NoError(t, err)

	err = store.SaveAuth(ctx, &storage.AuthData{ServerURL: "https://hub.example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")

	_, err = store.GetAuth(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")

	err = store.DeleteAuth(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "auth bucket not found")
}
