package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/scopekeeper/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth      = []byte("auth")
	bucketEvents    = []byte("events")
	bucketApplied   = []byte("applied")
	bucketTasks     = []byte("tasks")
	bucketSyncState = []byte("syncstate")
	bucketMetadata  = []byte("metadata")
)

var keyDeviceID = []byte("device_id")

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketAuth,
			bucketEvents,
			bucketApplied,
			bucketTasks,
			bucketSyncState,
			bucketMetadata,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// ProvisionDevice записывает идентификатор локальной реплики. Выполняется
// один раз при pairing; идентификатор участвует в каждом локальном событии
// и в векторных часах, менять его после записи событий нельзя.
func (s *Storage) ProvisionDevice(ctx context.Context, deviceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if existing := bucket.Get(keyDeviceID); existing != nil && string(existing) != deviceID {
			return fmt.Errorf("device already provisioned as %s", existing)
		}

		if err := bucket.Put(keyDeviceID, []byte(deviceID)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}
		return nil
	})
}

// LocalDeviceID возвращает идентификатор локальной реплики.
// Возвращает ErrDeviceNotProvisioned до первого pairing.
func (s *Storage) LocalDeviceID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var deviceID string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get(keyDeviceID)
		if data == nil {
			return storage.ErrDeviceNotProvisioned
		}
		deviceID = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return deviceID, nil
}
