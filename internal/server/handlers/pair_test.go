package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/internal/server/storage"
	"github.com/iudanet/scopekeeper/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockDeviceStorage is a mock implementation of DeviceStorage for testing
type mockDeviceStorage struct {
	devices     map[string]*models.Device
	createError error
	touched     []string
}

func newMockDeviceStorage() *mockDeviceStorage {
	return &mockDeviceStorage{devices: make(map[string]*models.Device)}
}

func (m *mockDeviceStorage) CreateDevice(ctx context.Context, device *models.Device) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.devices[device.ID]; exists {
		return storage.ErrDeviceAlreadyExists
	}
	m.devices[device.ID] = device
	return nil
}

func (m *mockDeviceStorage) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	device, ok := m.devices[id]
	if !ok {
		return nil, storage.ErrDeviceNotFound
	}
	return device, nil
}

func (m *mockDeviceStorage) ListDevices(ctx context.Context) ([]*models.Device, error) {
	devices := make([]*models.Device, 0, len(m.devices))
	for _, device := range m.devices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (m *mockDeviceStorage) TouchDevice(ctx context.Context, id string, seenAt time.Time) error {
	if _, ok := m.devices[id]; !ok {
		return storage.ErrDeviceNotFound
	}
	m.touched = append(m.touched, id)
	return nil
}

func (m *mockDeviceStorage) DeleteDevice(ctx context.Context, id string) error {
	if _, ok := m.devices[id]; !ok {
		return storage.ErrDeviceNotFound
	}
	delete(m.devices, id)
	return nil
}

const testPairingCode = "correct-horse-battery"

func newTestPairHandler(t *testing.T, devices storage.DeviceStorage) *PairHandler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPairingCode), bcrypt.MinCost)
	require.NoError(t, err)

	jwtConfig := JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: time.Hour,
	}

	return NewPairHandler(setupTestLogger(), devices, jwtConfig, hash, "server-device")
}

func pairRequest(t *testing.T, req api.PairRequest) *http.Request {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/v1/pair", bytes.NewReader(body))
}

func TestPair_Success(t *testing.T) {
	devices := newMockDeviceStorage()
	handler := newTestPairHandler(t, devices)

	w := httptest.NewRecorder()
	handler.Pair(w, pairRequest(t, api.PairRequest{
		DeviceName:  "laptop",
		PairingCode: testPairingCode,
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.PairResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.DeviceID)
	assert.Equal(t, "server-device", resp.ServerDeviceID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	// Устройство зарегистрировано
	device, err := devices.GetDevice(context.Background(), resp.DeviceID)
	require.NoError(t, err)
	assert.Equal(t, "laptop", device.Name)

	// Токен валиден и несет идентичность устройства
	claims, err := ValidateAccessToken(JWTConfig{Secret: []byte("test-secret-key")}, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.DeviceID, claims.DeviceID)
	assert.Equal(t, "laptop", claims.DeviceName)
}

func TestPair_InvalidPairingCode(t *testing.T) {
	devices := newMockDeviceStorage()
	handler := newTestPairHandler(t, devices)

	w := httptest.NewRecorder()
	handler.Pair(w, pairRequest(t, api.PairRequest{
		DeviceName:  "laptop",
		PairingCode: "wrong-code",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, devices.devices)
}

func TestPair_InvalidDeviceName(t *testing.T) {
	handler := newTestPairHandler(t, newMockDeviceStorage())

	tests := []struct {
		name       string
		deviceName string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"invalid characters", "my laptop!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Pair(w, pairRequest(t, api.PairRequest{
				DeviceName:  tt.deviceName,
				PairingCode: testPairingCode,
			}))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPair_InvalidBody(t *testing.T) {
	handler := newTestPairHandler(t, newMockDeviceStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pair", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	handler.Pair(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPair_StorageError(t *testing.T) {
	devices := newMockDeviceStorage()
	devices.createError = errors.New("disk full")
	handler := newTestPairHandler(t, devices)

	w := httptest.NewRecorder()
	handler.Pair(w, pairRequest(t, api.PairRequest{
		DeviceName:  "laptop",
		PairingCode: testPairingCode,
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
