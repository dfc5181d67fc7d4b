package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
)

// Ошибки нарушения контракта state machine. Это ошибки вызывающего кода,
// они фатальны и никогда не ретраятся автоматически.
var (
	// ErrInvalidTransition недопустимый переход состояния синхронизации
	ErrInvalidTransition = errors.New("invalid sync state transition")

	// ErrInvalidChangeCount недопустимое (неположительное) количество изменений
	ErrInvalidChangeCount = errors.New("pending change count must be positive")
)

// SyncStatus представляет статус синхронизации с удаленным устройством.
type SyncStatus string

const (
	// SyncStatusNeverSynced синхронизация еще ни разу не выполнялась
	SyncStatusNeverSynced SyncStatus = "never_synced"
	// SyncStatusInProgress цикл синхронизации выполняется прямо сейчас
	SyncStatusInProgress SyncStatus = "in_progress"
	// SyncStatusSuccess последний цикл завершился успешно
	SyncStatusSuccess SyncStatus = "success"
	// SyncStatusFailed последний цикл завершился ошибкой
	SyncStatusFailed SyncStatus = "failed"
	// SyncStatusOffline устройство недоступно (временная потеря связи,
	// не путать с Failed: offline не запускает retry/backoff политику)
	SyncStatusOffline SyncStatus = "offline"
)

// SyncState представляет состояние синхронизации с одним удаленным
// устройством. Запись иммутабельна: операции возвращают новое значение,
// которое сохраняется в хранилище под optimistic concurrency контролем
// (поле Revision). Гейт IN_PROGRESS делает инвариант "не более одного
// цикла на пару устройств" свойством самих данных — внешняя блокировка
// планировщику не нужна.
type SyncState struct {
	LastSyncAt         *time.Time       `json:"last_sync_at"`         // LastSyncAt время начала последнего цикла (nil = никогда)
	LastSuccessfulPush *time.Time       `json:"last_successful_push"` // LastSuccessfulPush время последнего успешного push
	LastSuccessfulPull *time.Time       `json:"last_successful_pull"` // LastSuccessfulPull время последнего успешного pull
	DeviceID           string           `json:"device_id"`            // DeviceID идентификатор удаленного устройства
	LastError          string           `json:"last_error"`           // LastError диагностика последней ошибки (только метаданные)
	RemoteClock        crdt.VectorClock `json:"remote_clock"`         // RemoteClock последние известные часы удаленного устройства
	Status             SyncStatus       `json:"status"`               // Status текущий статус state machine
	PendingChanges     int              `json:"pending_changes"`      // PendingChanges количество локальных событий, еще не подтвержденных push
	Revision           uint64           `json:"revision"`             // Revision версия записи для optimistic concurrency
}

// NewSyncState создает начальное состояние для только что зарегистрированного
// удаленного устройства: NEVER_SYNCED, пустые часы, нулевые timestamps.
func NewSyncState(deviceID string) SyncState {
	return SyncState{
		DeviceID: deviceID,
		Status:   SyncStatusNeverSynced,
	}
}

// StartSync переводит состояние в IN_PROGRESS и фиксирует время начала цикла.
// Прекондиция: CanSync(). Нарушение — ошибка контракта, не ретраится.
func (s SyncState) StartSync(now time.Time) (SyncState, error) {
	if !s.CanSync() {
		return s, fmt.Errorf("start sync for device %s in status %q: %w",
			s.DeviceID, s.Status, ErrInvalidTransition)
	}

	next := s
	next.Status = SyncStatusInProgress
	next.LastSyncAt = &now
	return next, nil
}

// MarkSyncSuccess завершает цикл успехом: сбрасывает pending changes,
// запоминает новые часы удаленного устройства. Timestamps push/pull
// обновляются только если соответствующий счетчик событий больше нуля.
// Прекондиция: Status == IN_PROGRESS.
func (s SyncState) MarkSyncSuccess(eventsPushed, eventsPulled int, remoteClock crdt.VectorClock, now time.Time) (SyncState, error) {
	if s.Status != SyncStatusInProgress {
		return s, fmt.Errorf("mark sync success for device %s in status %q: %w",
			s.DeviceID, s.Status, ErrInvalidTransition)
	}

	next := s
	next.Status = SyncStatusSuccess
	next.PendingChanges = 0
	next.RemoteClock = remoteClock
	next.LastError = ""
	if eventsPushed > 0 {
		next.LastSuccessfulPush = &now
	}
	if eventsPulled > 0 {
		next.LastSuccessfulPull = &now
	}
	return next, nil
}

// MarkSyncFailed завершает цикл ошибкой. Причина сохраняется только как
// диагностика. Прекондиция: Status == IN_PROGRESS.
func (s SyncState) MarkSyncFailed(reason string) (SyncState, error) {
	if s.Status != SyncStatusInProgress {
		return s, fmt.Errorf("mark sync failed for device %s in status %q: %w",
			s.DeviceID, s.Status, ErrInvalidTransition)
	}

	next := s
	next.Status = SyncStatusFailed
	next.LastError = reason
	return next, nil
}

// MarkOffline безусловно помечает устройство как недоступное.
func (s SyncState) MarkOffline() SyncState {
	next := s
	next.Status = SyncStatusOffline
	return next
}

// MarkOnline возвращает устройство из offline: NEVER_SYNCED, если
// синхронизация ни разу не выполнялась, иначе SUCCESS.
func (s SyncState) MarkOnline() SyncState {
	next := s
	if s.LastSyncAt == nil {
		next.Status = SyncStatusNeverSynced
	} else {
		next.Status = SyncStatusSuccess
	}
	return next
}

// IncrementPendingChanges увеличивает счетчик несинхронизированных локальных
// изменений. Вызывается при записи каждого локального события до того, как
// push подтвержден. count должен быть положительным.
func (s SyncState) IncrementPendingChanges(count int) (SyncState, error) {
	if count <= 0 {
		return s, fmt.Errorf("increment pending changes by %d: %w", count, ErrInvalidChangeCount)
	}

	next := s
	next.PendingChanges += count
	return next, nil
}

// CanSync сообщает, можно ли запускать новый цикл синхронизации.
func (s SyncState) CanSync() bool {
	return s.Status != SyncStatusInProgress && s.Status != SyncStatusOffline
}

// NeedsSync сообщает, есть ли причина синхронизироваться: накопленные
// локальные изменения либо неуспешный последний цикл. Для статусов
// IN_PROGRESS и OFFLINE всегда false независимо от pending changes.
func (s SyncState) NeedsSync() bool {
	if s.Status == SyncStatusInProgress || s.Status == SyncStatusOffline {
		return false
	}
	return s.PendingChanges > 0 || s.Status == SyncStatusFailed
}

// TimeSinceLastSync возвращает время с момента последнего цикла,
// nil — если синхронизация еще не выполнялась.
func (s SyncState) TimeSinceLastSync(now time.Time) *time.Duration {
	if s.LastSyncAt == nil {
		return nil
	}
	d := now.Sub(*s.LastSyncAt)
	return &d
}

// IsStale сообщает, устарело ли состояние: синхронизации не было вообще
// либо прошло больше threshold с последнего цикла.
func (s SyncState) IsStale(threshold time.Duration, now time.Time) bool {
	since := s.TimeSinceLastSync(now)
	if since == nil {
		return true
	}
	return *since > threshold
}
