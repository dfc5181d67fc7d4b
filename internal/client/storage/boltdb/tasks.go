package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/models"
)

// GetTask returns a task by id.
// Returns ErrTaskNotFound if the task doesn't exist or is deleted.
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var task *models.Task

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return storage.ErrTaskNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrTaskNotFound
		}

		task = &models.Task{}
		if err := json.Unmarshal(data, task); err != nil {
			return fmt.Errorf("failed to unmarshal task: %w", err)
		}

		// Tombstone после task.deleted
		if task.Deleted {
			return storage.ErrTaskNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns non-deleted tasks sorted by creation time, optionally
// filtered by scope (empty scope means all scopes).
func (s *Storage) ListTasks(ctx context.Context, scope string) ([]*models.Task, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var tasks []*models.Task

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var task models.Task
			if err := json.Unmarshal(v, &task); err != nil {
				return fmt.Errorf("failed to unmarshal task: %w", err)
			}

			if task.Deleted {
				return nil
			}
			if scope != "" && task.Scope != scope {
				return nil
			}

			tasks = append(tasks, &task)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}
