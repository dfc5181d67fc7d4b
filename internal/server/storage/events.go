package storage

import (
	"context"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

// EventStorage defines interface for the hub event journal
type EventStorage interface {
	// AppendEvents stores incoming events in the journal.
	// Events the hub has already seen (same origin device and sequence
	// number) are skipped. Returns the number of newly stored events.
	AppendEvents(ctx context.Context, events []models.Event) (int, error)

	// EventsSince retrieves events the given vector clock has not seen,
	// ordered by recorded time. Returns empty slice if the caller is
	// up to date.
	EventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error)

	// CurrentClock computes the hub's vector clock: for every origin
	// device, the highest sequence number stored in the journal.
	CurrentClock(ctx context.Context) (crdt.VectorClock, error)
}
