package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/models"
)

// LoadSyncState returns the sync state for a remote device.
// Creates a NEVER_SYNCED default if no record exists yet.
func (s *Storage) LoadSyncState(ctx context.Context, deviceID string) (models.SyncState, error) {
	if s.db == nil {
		return models.SyncState{}, storage.ErrStorageClosed
	}

	var state models.SyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		data := bucket.Get([]byte(deviceID))
		if data == nil {
			state = models.NewSyncState(deviceID)
			return nil
		}

		if err := json.Unmarshal(data, &state); err != nil {
			return fmt.Errorf("failed to unmarshal sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.SyncState{}, err
	}

	return state, nil
}

// SaveSyncState persists the state using compare-and-swap on the Revision
// field and returns the stored state with the bumped revision. Returns
// ErrStateRevisionMismatch when a concurrent writer won; the caller
// retries the whole cycle.
func (s *Storage) SaveSyncState(ctx context.Context, state models.SyncState) (models.SyncState, error) {
	if s.db == nil {
		return models.SyncState{}, storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		// CAS: ревизия сохраняемого значения обязана совпадать с ревизией
		// записи в хранилище (0 — записи еще нет)
		if data := bucket.Get([]byte(state.DeviceID)); data != nil {
			var existing models.SyncState
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal existing sync state: %w", err)
			}
			if existing.Revision != state.Revision {
				return storage.ErrStateRevisionMismatch
			}
		} else if state.Revision != 0 {
			return storage.ErrStateRevisionMismatch
		}

		state.Revision++

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal sync state: %w", err)
		}
		if err := bucket.Put([]byte(state.DeviceID), data); err != nil {
			return fmt.Errorf("failed to save sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.SyncState{}, err
	}

	return state, nil
}

// ListSyncStates returns the states of all known remote devices
func (s *Storage) ListSyncStates(ctx context.Context) ([]models.SyncState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var states []models.SyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var state models.SyncState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("failed to unmarshal sync state: %w", err)
			}
			states = append(states, state)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sync states: %w", err)
	}

	return states, nil
}

// DeleteSyncState removes the record when a peer is unpaired
func (s *Storage) DeleteSyncState(ctx context.Context, deviceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		if err := bucket.Delete([]byte(deviceID)); err != nil {
			return fmt.Errorf("failed to delete sync state: %w", err)
		}
		return nil
	})
}
