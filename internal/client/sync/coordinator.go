package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

//go:generate moq -out transport_mock.go . Transport

// Transport defines the remote side of one sync cycle. Implemented by the
// HTTP client (internal/client/api); replaced with a mock in tests.
type Transport interface {
	// FetchRemoteClock returns the peer's current vector clock
	FetchRemoteClock(ctx context.Context) (crdt.VectorClock, error)

	// FetchEventsSince returns peer events not yet reflected in the given clock
	FetchEventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error)

	// PushEvents delivers local events to the peer
	PushEvents(ctx context.Context, events []models.Event) error
}

// CycleResult итог одного цикла синхронизации с удаленным устройством.
type CycleResult struct {
	RemoteClock  crdt.VectorClock // RemoteClock новые известные часы удаленного устройства
	Conflicts    []ConflictRecord // Conflicts конкурентные изменения, требующие разрешения
	EventsPushed int              // EventsPushed количество отправленных событий
	EventsPulled int              // EventsPulled количество примененных удаленных событий
	Skipped      bool             // Skipped цикл не запускался (гейт CanSync)
}

// Coordinator оркестрирует цикл push/pull/merge с одним удаленным
// устройством. Переход в IN_PROGRESS сохраняется до любого сетевого I/O,
// чтобы падение посреди цикла оставляло восстановимое состояние. Применение
// удаленных событий идемпотентно, поэтому повторный запуск цикла после
// ошибки всегда безопасен.
type Coordinator struct {
	events    storage.EventStorage
	states    storage.SyncStateStorage
	transport Transport
	detector  *Detector
	logger    *slog.Logger
	now       func() time.Time
}

// NewCoordinator creates a sync coordinator
func NewCoordinator(events storage.EventStorage, states storage.SyncStateStorage, transport Transport, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		events:    events,
		states:    states,
		transport: transport,
		detector:  NewDetector(),
		logger:    logger,
		now:       time.Now,
	}
}

// Run выполняет один цикл синхронизации с устройством remoteDeviceID.
//  1. Загружает SyncState; если CanSync() == false — возвращает Skipped
//  2. Сохраняет переход в IN_PROGRESS (optimistic CAS по Revision)
//  3. Собирает локальные события, не отраженные в часах удаленной стороны
//  4. Запрашивает часы и новые события удаленной стороны
//  5. Конкурентные изменения одного агрегата уходят в ConflictRecord,
//     остальные удаленные события применяются идемпотентно
//  6. Отправляет локальные события, фиксирует merge часов и успех
//
// Ошибка I/O переводит состояние в FAILED; отмена контекста оставляет
// IN_PROGRESS (истинный исход неизвестен, запись возвращает внешняя
// timeout-политика).
func (c *Coordinator) Run(ctx context.Context, remoteDeviceID string) (*CycleResult, error) {
	state, err := c.states.LoadSyncState(ctx, remoteDeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync state: %w", err)
	}

	if !state.CanSync() {
		c.logger.Info("Sync skipped",
			"device_id", remoteDeviceID,
			"status", state.Status)
		return &CycleResult{Skipped: true}, nil
	}

	state, err = state.StartSync(c.now())
	if err != nil {
		// Нарушение контракта: ошибка вызывающего кода, не ретраится
		return nil, err
	}

	// Переход в IN_PROGRESS должен быть сохранен до любого I/O
	state, err = c.states.SaveSyncState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to persist in-progress state: %w", err)
	}

	c.logger.Info("Starting sync cycle",
		"device_id", remoteDeviceID,
		"remote_clock", state.RemoteClock.String(),
		"pending_changes", state.PendingChanges)

	result, err := c.cycle(ctx, state)
	if err != nil {
		return nil, c.fail(ctx, state, err)
	}

	state, err = state.MarkSyncSuccess(result.EventsPushed, result.EventsPulled, result.RemoteClock, c.now())
	if err != nil {
		return nil, err
	}
	if _, err := c.states.SaveSyncState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist sync success: %w", err)
	}

	c.logger.Info("Sync cycle completed",
		"device_id", remoteDeviceID,
		"pushed", result.EventsPushed,
		"pulled", result.EventsPulled,
		"conflicts", len(result.Conflicts))

	return result, nil
}

// cycle выполняет сетевую часть цикла поверх уже сохраненного IN_PROGRESS.
func (c *Coordinator) cycle(ctx context.Context, state models.SyncState) (*CycleResult, error) {
	toPush, err := c.events.EventsSince(ctx, state.RemoteClock)
	if err != nil {
		return nil, fmt.Errorf("failed to collect local events: %w", err)
	}

	remoteClock, err := c.transport.FetchRemoteClock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote clock: %w", err)
	}

	localClock, err := c.events.CurrentClock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local clock: %w", err)
	}

	toPull, err := c.transport.FetchEventsSince(ctx, localClock)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote events: %w", err)
	}

	// Конкурентные изменения одного агрегата не применяются автоматически:
	// last-write-wins запрещен, конфликт поднимается наружу
	conflicts := c.detector.Detect(toPush, toPull)
	conflicted := make(map[string]bool, len(conflicts))
	for _, conflict := range conflicts {
		conflicted[conflict.AggregateID] = true
		c.logger.Warn("Concurrent modification detected",
			"aggregate_id", conflict.AggregateID,
			"local_clock", conflict.Local.Clock.String(),
			"remote_clock", conflict.Remote.Clock.String())
	}

	accepted := make([]models.Event, 0, len(toPull))
	for _, event := range toPull {
		if !conflicted[event.AggregateID] {
			accepted = append(accepted, event)
		}
	}

	applied, err := c.events.ApplyEvents(ctx, accepted)
	if err != nil {
		return nil, fmt.Errorf("failed to apply remote events: %w", err)
	}

	if len(toPush) > 0 {
		if err := c.transport.PushEvents(ctx, toPush); err != nil {
			// Уже примененные события остаются примененными: цикл
			// идемпотентен, а не атомарен, повторный запуск безопасен
			return nil, fmt.Errorf("failed to push local events: %w", err)
		}
	}

	localAfterApply, err := c.events.CurrentClock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local clock after apply: %w", err)
	}

	return &CycleResult{
		EventsPushed: len(toPush),
		EventsPulled: applied,
		Conflicts:    conflicts,
		RemoteClock:  localAfterApply.Merge(remoteClock),
	}, nil
}

// fail фиксирует неуспех цикла. При отмене контекста состояние остается
// IN_PROGRESS — исход цикла неизвестен, пометить его FAILED должна внешняя
// timeout-политика.
func (c *Coordinator) fail(ctx context.Context, state models.SyncState, cause error) error {
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		c.logger.Warn("Sync cycle cancelled, state left in progress",
			"device_id", state.DeviceID,
			"error", cause)
		return cause
	}

	failed, err := state.MarkSyncFailed(cause.Error())
	if err != nil {
		return errors.Join(cause, err)
	}

	// Сохраняем даже если исходный контекст уже отменен после ошибки I/O
	saveCtx := context.WithoutCancel(ctx)
	if _, err := c.states.SaveSyncState(saveCtx, failed); err != nil {
		c.logger.Error("Failed to persist failed sync state",
			"device_id", state.DeviceID,
			"error", err)
		return errors.Join(cause, err)
	}

	return cause
}
