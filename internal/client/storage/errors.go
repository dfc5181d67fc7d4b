package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no pairing data exists
	ErrAuthNotFound = errors.New("pairing data not found")

	// ErrTaskNotFound indicates that task was not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrEventNotFound indicates that event was not found
	ErrEventNotFound = errors.New("event not found")

	// ErrStateRevisionMismatch indicates that a concurrent writer updated
	// the sync state record first (optimistic concurrency conflict)
	ErrStateRevisionMismatch = errors.New("sync state revision mismatch")

	// ErrDeviceNotProvisioned indicates that the local device id is not set yet
	ErrDeviceNotProvisioned = errors.New("local device not provisioned")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
