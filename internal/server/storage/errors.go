package storage

import "errors"

// Common storage errors
var (
	// ErrDeviceNotFound indicates that device was not found in storage
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceAlreadyExists indicates that device with this id is already paired
	ErrDeviceAlreadyExists = errors.New("device already exists")
)
