package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

var keyClock = []byte("clock")

// eventKey формирует ключ события: устройство и seq с паддингом, чтобы
// лексикографический порядок ключей совпадал с порядком seq внутри
// одного устройства.
func eventKey(deviceID string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s|%020d", deviceID, seq))
}

// appliedKey помечает пару (aggregateID, version) как примененную
func appliedKey(aggregateID string, version int64) []byte {
	return []byte(fmt.Sprintf("%s|%d", aggregateID, version))
}

// AppendEvent records a locally originated event: stamps it with the next
// local vector clock value and the local device id, stores it, marks it
// applied and folds it into the task projection. Everything happens in one
// transaction, so the journal, the clock and the projection never diverge.
func (s *Storage) AppendEvent(ctx context.Context, event models.Event) (models.Event, error) {
	if s.db == nil {
		return models.Event{}, storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		if meta == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		deviceData := meta.Get(keyDeviceID)
		if deviceData == nil {
			return storage.ErrDeviceNotProvisioned
		}
		deviceID := string(deviceData)

		clock, err := readClock(meta)
		if err != nil {
			return err
		}

		// Штамп события: инкремент собственного счетчика в часах
		event.DeviceID = deviceID
		event.Clock = clock.Increment(deviceID)
		if event.RecordedAt.IsZero() {
			event.RecordedAt = time.Now().UTC()
		}

		if err := s.storeEvent(tx, event); err != nil {
			return err
		}

		return writeClock(meta, event.Clock)
	})
	if err != nil {
		return models.Event{}, err
	}

	return event, nil
}

// ApplyEvents applies remote events idempotently: events whose
// (aggregateID, version) pair is already applied are skipped. Returns the
// number of newly applied events.
func (s *Storage) ApplyEvents(ctx context.Context, events []models.Event) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	// Проекция сворачивается в порядке версий внутри агрегата. Порядок
	// прихода следует физическим часам источников, которые могут расходиться:
	// событие v2 может прийти раньше v1.
	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].AggregateID != ordered[j].AggregateID {
			return ordered[i].AggregateID < ordered[j].AggregateID
		}
		return ordered[i].Version < ordered[j].Version
	})

	applied := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		markers := tx.Bucket(bucketApplied)
		if meta == nil || markers == nil {
			return fmt.Errorf("storage buckets not found")
		}

		clock, err := readClock(meta)
		if err != nil {
			return err
		}

		for _, event := range ordered {
			if markers.Get(appliedKey(event.AggregateID, event.Version)) != nil {
				continue
			}

			if err := s.storeEvent(tx, event); err != nil {
				return fmt.Errorf("failed to apply event %s: %w", event.ID, err)
			}

			clock = clock.Merge(event.Clock)
			applied++
		}

		return writeClock(meta, clock)
	})
	if err != nil {
		return 0, err
	}

	return applied, nil
}

// storeEvent записывает событие в журнал, помечает его примененным и
// сворачивает в проекцию задач. Вызывается внутри Update-транзакции.
func (s *Storage) storeEvent(tx *bbolt.Tx, event models.Event) error {
	journal := tx.Bucket(bucketEvents)
	markers := tx.Bucket(bucketApplied)
	tasks := tx.Bucket(bucketTasks)
	if journal == nil || markers == nil || tasks == nil {
		return fmt.Errorf("storage buckets not found")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := journal.Put(eventKey(event.DeviceID, event.Seq()), data); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	if err := markers.Put(appliedKey(event.AggregateID, event.Version), []byte{1}); err != nil {
		return fmt.Errorf("failed to mark event applied: %w", err)
	}

	// Проекция: текущее состояние задачи + событие -> новое состояние.
	// Удаленные задачи остаются tombstone-записями, их отсекает ListTasks.
	var prev *models.Task
	if taskData := tasks.Get([]byte(event.AggregateID)); taskData != nil {
		prev = &models.Task{}
		if err := json.Unmarshal(taskData, prev); err != nil {
			return fmt.Errorf("failed to unmarshal task projection: %w", err)
		}
	}

	next, err := models.ReduceTask(prev, event)
	if err != nil {
		return fmt.Errorf("failed to reduce event %s: %w", event.ID, err)
	}

	taskData, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal task projection: %w", err)
	}
	if err := tasks.Put([]byte(event.AggregateID), taskData); err != nil {
		return fmt.Errorf("failed to save task projection: %w", err)
	}

	return nil
}

// EventsSince returns events not yet reflected in the given vector clock,
// ordered by recording time, then device id, then seq.
func (s *Storage) EventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var events []models.Event

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEvents)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var event models.Event
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			// Событие уже отражено в часах получателя
			if event.Seq() <= since.Counter(event.DeviceID) {
				return nil
			}

			events = append(events, event)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect events: %w", err)
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		if a.DeviceID != b.DeviceID {
			return a.DeviceID < b.DeviceID
		}
		return a.Seq() < b.Seq()
	})

	return events, nil
}

// CurrentClock returns the merged vector clock of all recorded events
func (s *Storage) CurrentClock(ctx context.Context) (crdt.VectorClock, error) {
	if s.db == nil {
		return crdt.VectorClock{}, storage.ErrStorageClosed
	}

	var clock crdt.VectorClock
	err := s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		if meta == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		var err error
		clock, err = readClock(meta)
		return err
	})
	if err != nil {
		return crdt.VectorClock{}, err
	}

	return clock, nil
}

// readClock читает локальные векторные часы из metadata bucket.
// Отсутствие записи означает пустые часы.
func readClock(meta *bbolt.Bucket) (crdt.VectorClock, error) {
	data := meta.Get(keyClock)
	if data == nil {
		return crdt.New(), nil
	}

	var clock crdt.VectorClock
	if err := json.Unmarshal(data, &clock); err != nil {
		return crdt.VectorClock{}, fmt.Errorf("failed to unmarshal local clock: %w", err)
	}
	return clock, nil
}

func writeClock(meta *bbolt.Bucket, clock crdt.VectorClock) error {
	data, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal local clock: %w", err)
	}
	if err := meta.Put(keyClock, data); err != nil {
		return fmt.Errorf("failed to save local clock: %w", err)
	}
	return nil
}
