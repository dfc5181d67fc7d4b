package storage

import (
	"context"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing pairing data on client
type AuthStorage interface {
	// SaveAuth stores pairing data (server URL, device identity, token)
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored pairing data
	// Returns ErrAuthNotFound if the device has never been paired
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored pairing data (unpair)
	DeleteAuth(ctx context.Context) error

	// IsPaired checks if a non-expired pairing exists
	IsPaired(ctx context.Context) (bool, error)
}

// AuthData represents the pairing of this device with a hub server.
// LocalDeviceID is the identity of this replica; ServerDeviceID is the
// hub's replica id and the key of its SyncState record.
type AuthData struct {
	ServerURL      string `json:"server_url"`
	DeviceName     string `json:"device_name"`
	LocalDeviceID  string `json:"local_device_id"`
	ServerDeviceID string `json:"server_device_id"`
	AccessToken    string `json:"access_token"`
	ExpiresAt      int64  `json:"expires_at"`
}
