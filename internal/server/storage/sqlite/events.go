package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

// AppendEvents stores incoming events in the journal.
// Повтор события (тот же device_id и seq) молча пропускается, поэтому
// клиент может безопасно переотправить пачку после сбоя.
// Returns the number of newly stored events.
func (s *Storage) AppendEvents(ctx context.Context, events []models.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback после Commit — no-op
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT OR IGNORE INTO events (
			device_id, seq, id, aggregate_id, aggregate_type,
			event_type, payload, clock, version, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	accepted := 0
	for _, event := range events {
		clock, err := json.Marshal(event.Clock)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal clock: %w", err)
		}

		result, err := tx.ExecContext(ctx, query,
			event.DeviceID,
			event.Seq(),
			event.ID,
			event.AggregateID,
			event.AggregateType,
			event.EventType,
			event.Payload,
			string(clock),
			event.Version,
			event.RecordedAt.UnixNano(),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert event: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		accepted += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return accepted, nil
}

// EventsSince retrieves events the given vector clock has not seen.
// Для каждого устройства-источника отбираются события с seq больше
// счетчика этого устройства в переданных часах.
func (s *Storage) EventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error) {
	deviceIDs, err := s.journalDevices(ctx)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	for _, deviceID := range deviceIDs {
		batch, err := s.deviceEventsSince(ctx, deviceID, since.Counter(deviceID))
		if err != nil {
			return nil, err
		}
		events = append(events, batch...)
	}

	// Стабильный порядок: физическое время записи, затем источник и seq
	sort.Slice(events, func(i, j int) bool {
		if !events[i].RecordedAt.Equal(events[j].RecordedAt) {
			return events[i].RecordedAt.Before(events[j].RecordedAt)
		}
		if events[i].DeviceID != events[j].DeviceID {
			return events[i].DeviceID < events[j].DeviceID
		}
		return events[i].Seq() < events[j].Seq()
	})

	return events, nil
}

// CurrentClock computes the hub's vector clock from the journal
func (s *Storage) CurrentClock(ctx context.Context) (crdt.VectorClock, error) {
	query := `SELECT device_id, MAX(seq) FROM events GROUP BY device_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return crdt.New(), fmt.Errorf("failed to query clock: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	counters := make(map[string]uint64)
	for rows.Next() {
		var deviceID string
		var seq uint64
		if err := rows.Scan(&deviceID, &seq); err != nil {
			return crdt.New(), fmt.Errorf("failed to scan clock row: %w", err)
		}
		counters[deviceID] = seq
	}

	if err := rows.Err(); err != nil {
		return crdt.New(), fmt.Errorf("rows iteration error: %w", err)
	}

	return crdt.FromMap(counters), nil
}

// journalDevices возвращает все устройства-источники, встречающиеся в журнале
func (s *Storage) journalDevices(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT device_id FROM events ORDER BY device_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal devices: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var deviceIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan device id: %w", err)
		}
		deviceIDs = append(deviceIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return deviceIDs, nil
}

// deviceEventsSince возвращает события одного устройства с seq > since
func (s *Storage) deviceEventsSince(ctx context.Context, deviceID string, since uint64) ([]models.Event, error) {
	query := `
		SELECT id, device_id, aggregate_id, aggregate_type,
		       event_type, payload, clock, version, recorded_at
		FROM events
		WHERE device_id = ? AND seq > ?
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query, deviceID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return scanEvents(rows)
}

// scanEvents is a helper function to scan multiple events from rows
func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event

	for rows.Next() {
		var event models.Event
		var clock string
		var recordedAt int64

		err := rows.Scan(
			&event.ID,
			&event.DeviceID,
			&event.AggregateID,
			&event.AggregateType,
			&event.EventType,
			&event.Payload,
			&clock,
			&event.Version,
			&recordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if err := json.Unmarshal([]byte(clock), &event.Clock); err != nil {
			return nil, fmt.Errorf("failed to unmarshal clock: %w", err)
		}
		event.RecordedAt = time.Unix(0, recordedAt)

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}
