package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/internal/server/storage"
)

// CreateDevice registers a newly paired device
// Returns ErrDeviceAlreadyExists if device with this id is already registered
func (s *Storage) CreateDevice(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (id, name, paired_at, last_seen_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		device.ID,
		device.Name,
		device.PairedAt.Unix(),
		device.LastSeenAt.Unix(),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDeviceAlreadyExists
		}
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

// GetDevice retrieves a device by id
// Returns ErrDeviceNotFound if device doesn't exist
func (s *Storage) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	query := `
		SELECT id, name, paired_at, last_seen_at
		FROM devices
		WHERE id = ?
	`

	device := &models.Device{}
	var pairedAt, lastSeenAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&device.ID,
		&device.Name,
		&pairedAt,
		&lastSeenAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	device.PairedAt = time.Unix(pairedAt, 0)
	device.LastSeenAt = time.Unix(lastSeenAt, 0)

	return device, nil
}

// ListDevices retrieves all paired devices ordered by pairing time
func (s *Storage) ListDevices(ctx context.Context) ([]*models.Device, error) {
	query := `
		SELECT id, name, paired_at, last_seen_at
		FROM devices
		ORDER BY paired_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var devices []*models.Device
	for rows.Next() {
		device := &models.Device{}
		var pairedAt, lastSeenAt int64

		if err := rows.Scan(&device.ID, &device.Name, &pairedAt, &lastSeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}

		device.PairedAt = time.Unix(pairedAt, 0)
		device.LastSeenAt = time.Unix(lastSeenAt, 0)
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

// TouchDevice updates the last seen timestamp of a device
// Returns ErrDeviceNotFound if device doesn't exist
func (s *Storage) TouchDevice(ctx context.Context, id string, seenAt time.Time) error {
	query := `UPDATE devices SET last_seen_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, seenAt.Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to touch device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a paired device
// Returns ErrDeviceNotFound if device doesn't exist
func (s *Storage) DeleteDevice(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM devices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDeviceNotFound
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением PRIMARY KEY/UNIQUE
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
