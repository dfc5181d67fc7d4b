package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/scopekeeper/internal/client/storage"
)

// Runner запускает один цикл синхронизации с указанным устройством.
// Реализуется Coordinator; в тестах подменяется фейком.
type Runner interface {
	Run(ctx context.Context, remoteDeviceID string) (*CycleResult, error)
}

// Scheduler периодически обходит известные удаленные устройства и
// запускает циклы синхронизации там, где есть причина: накопленные
// изменения, неуспешный последний цикл либо устаревшее состояние.
// Циклы для разных устройств выполняются параллельно; для одного
// устройства повторный запуск отсекается гейтом IN_PROGRESS в SyncState.
type Scheduler struct {
	runner     Runner
	states     storage.SyncStateStorage
	logger     *slog.Logger
	interval   time.Duration
	staleAfter time.Duration
}

// NewScheduler creates a periodic sync scheduler.
// interval is the poll period, staleAfter is the staleness threshold.
func NewScheduler(runner Runner, states storage.SyncStateStorage, interval, staleAfter time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		states:     states,
		interval:   interval,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

// Run блокируется до отмены контекста, запуская Tick каждые interval.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Первый проход сразу, не дожидаясь первого тика
	s.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick выполняет один проход по известным устройствам.
func (s *Scheduler) Tick(ctx context.Context) {
	states, err := s.states.ListSyncStates(ctx)
	if err != nil {
		s.logger.Error("Failed to list sync states", "error", err)
		return
	}

	now := time.Now()

	var wg sync.WaitGroup
	for _, state := range states {
		if !state.NeedsSync() && !state.IsStale(s.staleAfter, now) {
			continue
		}

		wg.Add(1)
		go func(deviceID string) {
			defer wg.Done()

			result, err := s.runner.Run(ctx, deviceID)
			if err != nil {
				s.logger.Warn("Scheduled sync failed",
					"device_id", deviceID,
					"error", err)
				return
			}
			if result.Skipped {
				return
			}
			if len(result.Conflicts) > 0 {
				s.logger.Warn("Scheduled sync finished with conflicts",
					"device_id", deviceID,
					"conflicts", len(result.Conflicts))
			}
		}(state.DeviceID)
	}
	wg.Wait()
}
