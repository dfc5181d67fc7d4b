package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/scopekeeper/internal/client/api"
	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/internal/validation"
	pkgapi "github.com/iudanet/scopekeeper/pkg/api"
)

// Provisioner записывает идентификатор локальной реплики в хранилище.
// Реализуется boltdb.Storage.
type Provisioner interface {
	ProvisionDevice(ctx context.Context, deviceID string) error
	LocalDeviceID(ctx context.Context) (string, error)
}

// Service предоставляет функции подключения устройства к hub-серверу
type Service struct {
	apiClient   *api.Client
	authStore   storage.AuthStorage
	states      storage.SyncStateStorage
	provisioner Provisioner
}

// NewService создает новый сервис pairing
func NewService(apiClient *api.Client, authStore storage.AuthStorage, states storage.SyncStateStorage, provisioner Provisioner) *Service {
	return &Service{
		apiClient:   apiClient,
		authStore:   authStore,
		states:      states,
		provisioner: provisioner,
	}
}

// PairResult содержит результат подключения устройства
type PairResult struct {
	DeviceID       string // идентификатор, выданный этому устройству
	ServerDeviceID string // идентификатор реплики сервера
	DeviceName     string // имя устройства
}

// Pair подключает устройство к серверу по одноразовому коду.
//  1. Сервер проверяет код и выдает этому устройству идентификатор и токен
//  2. Идентификатор реплики записывается в локальное хранилище
//  3. Для реплики сервера заводится запись SyncState (NEVER_SYNCED),
//     чтобы планировщик начал ее синхронизировать
func (s *Service) Pair(ctx context.Context, serverURL, deviceName, pairingCode string) (*PairResult, error) {
	// Валидация входных данных
	if err := validation.ValidateDeviceName(deviceName); err != nil {
		return nil, fmt.Errorf("invalid device name: %w", err)
	}
	if pairingCode == "" {
		return nil, fmt.Errorf("pairing code is required")
	}

	resp, err := s.apiClient.Pair(ctx, pkgapi.PairRequest{
		DeviceName:  deviceName,
		PairingCode: pairingCode,
	})
	if err != nil {
		return nil, fmt.Errorf("pairing failed: %w", err)
	}

	if err := s.provisioner.ProvisionDevice(ctx, resp.DeviceID); err != nil {
		return nil, fmt.Errorf("failed to provision device: %w", err)
	}

	auth := &storage.AuthData{
		ServerURL:      serverURL,
		DeviceName:     deviceName,
		LocalDeviceID:  resp.DeviceID,
		ServerDeviceID: resp.ServerDeviceID,
		AccessToken:    resp.AccessToken,
		ExpiresAt:      time.Now().Unix() + resp.ExpiresIn,
	}
	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	// Запись состояния для реплики сервера: с этого момента планировщик
	// видит устройство и запускает циклы
	if _, err := s.states.SaveSyncState(ctx, models.NewSyncState(resp.ServerDeviceID)); err != nil {
		return nil, fmt.Errorf("failed to create sync state: %w", err)
	}

	s.apiClient.SetToken(resp.AccessToken)

	return &PairResult{
		DeviceID:       resp.DeviceID,
		ServerDeviceID: resp.ServerDeviceID,
		DeviceName:     deviceName,
	}, nil
}

// Session восстанавливает сохраненное подключение: возвращает auth данные
// и устанавливает токен в API клиент.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	if time.Now().Unix() > auth.ExpiresAt {
		return nil, fmt.Errorf("access token expired, pair the device again")
	}

	s.apiClient.SetToken(auth.AccessToken)
	return auth, nil
}

// IsPaired проверяет наличие действующего подключения
func (s *Service) IsPaired(ctx context.Context) (bool, error) {
	return s.authStore.IsPaired(ctx)
}

// Unpair отключает устройство: удаляет auth данные и запись SyncState
// реплики сервера. Локальный журнал событий не трогаем.
func (s *Service) Unpair(ctx context.Context) error {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	if err := s.states.DeleteSyncState(ctx, auth.ServerDeviceID); err != nil {
		return fmt.Errorf("failed to delete sync state: %w", err)
	}

	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	return nil
}
