package storage

import (
	"context"
	"time"

	"github.com/iudanet/scopekeeper/internal/models"
)

// DeviceStorage defines interface for paired device persistence
type DeviceStorage interface {
	// CreateDevice registers a newly paired device
	// Returns ErrDeviceAlreadyExists if device with this id is already registered
	CreateDevice(ctx context.Context, device *models.Device) error

	// GetDevice retrieves a device by id
	// Returns ErrDeviceNotFound if device doesn't exist
	GetDevice(ctx context.Context, id string) (*models.Device, error)

	// ListDevices retrieves all paired devices
	// Returns empty slice if no devices are paired
	ListDevices(ctx context.Context) ([]*models.Device, error)

	// TouchDevice updates the last seen timestamp of a device
	// Returns ErrDeviceNotFound if device doesn't exist
	TouchDevice(ctx context.Context, id string, seenAt time.Time) error

	// DeleteDevice removes a paired device
	// Returns ErrDeviceNotFound if device doesn't exist
	DeleteDevice(ctx context.Context, id string) error
}
