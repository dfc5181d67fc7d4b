package storage

import (
	"context"

	"github.com/iudanet/scopekeeper/internal/models"
)

//go:generate moq -out syncstatestorage_mock.go . SyncStateStorage

// SyncStateStorage defines interface for per-peer sync state records.
// Records are immutable snapshots: read, transform via models.SyncState
// operations, write back under optimistic concurrency control.
type SyncStateStorage interface {
	// LoadSyncState returns the sync state for a remote device.
	// Creates a NEVER_SYNCED default if no record exists yet.
	LoadSyncState(ctx context.Context, deviceID string) (models.SyncState, error)

	// SaveSyncState persists the state using compare-and-swap on the
	// Revision field and returns the stored state with the bumped
	// revision. Returns ErrStateRevisionMismatch when a concurrent
	// writer won; the caller retries the whole cycle.
	SaveSyncState(ctx context.Context, state models.SyncState) (models.SyncState, error)

	// ListSyncStates returns the states of all known remote devices
	ListSyncStates(ctx context.Context) ([]models.SyncState, error)

	// DeleteSyncState removes the record when a peer is unpaired
	DeleteSyncState(ctx context.Context, deviceID string) error
}
