package storage

import (
	"context"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

//go:generate moq -out eventstorage_mock.go . EventStorage

// EventStorage defines interface for the local event journal on client
type EventStorage interface {
	// AppendEvent records a locally originated event: stamps it with the
	// next local vector clock, assigns the origin device id, stores it,
	// marks it applied and updates the task projection. Returns the
	// stamped event.
	AppendEvent(ctx context.Context, event models.Event) (models.Event, error)

	// ApplyEvents applies remote events idempotently: events whose
	// (aggregateID, version) pair is already applied are skipped. The batch
	// is applied in version order per aggregate regardless of input order.
	// Returns the number of newly applied events.
	ApplyEvents(ctx context.Context, events []models.Event) (int, error)

	// EventsSince returns events not yet reflected in the given vector
	// clock, ordered deterministically. Used to compute the push set.
	EventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error)

	// CurrentClock returns the merged vector clock of all recorded events
	CurrentClock(ctx context.Context) (crdt.VectorClock, error)
}

//go:generate moq -out taskstorage_mock.go . TaskStorage

// TaskStorage defines read access to the task projection
type TaskStorage interface {
	// GetTask returns a task by id
	// Returns ErrTaskNotFound if the task doesn't exist or is deleted
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// ListTasks returns non-deleted tasks, optionally filtered by scope
	// (empty scope means all scopes)
	ListTasks(ctx context.Context, scope string) ([]*models.Task, error)
}
