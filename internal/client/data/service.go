package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/models"
)

// ErrEmptyTitle задача не может быть создана без текста
var ErrEmptyTitle = errors.New("task title must not be empty")

// pendingRetries число повторов CAS при конкурентном обновлении SyncState
const pendingRetries = 3

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского task сервиса
type Service interface {
	AddTask(ctx context.Context, title, scope string) (*models.Task, error)
	RetitleTask(ctx context.Context, id, title string) error
	MoveTask(ctx context.Context, id, scope string) error
	CompleteTask(ctx context.Context, id string) error
	ReopenTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, scope string) ([]*models.Task, error)
}

// service записывает команды пользователя как события журнала.
// Каждое событие увеличивает счетчик несинхронизированных изменений
// для всех известных удаленных устройств.
type service struct {
	events storage.EventStorage
	tasks  storage.TaskStorage
	states storage.SyncStateStorage
}

// NewService creates a new task service
func NewService(events storage.EventStorage, tasks storage.TaskStorage, states storage.SyncStateStorage) Service {
	return &service{
		events: events,
		tasks:  tasks,
		states: states,
	}
}

// AddTask creates a new task in the given scope (empty scope = inbox)
func (s *service) AddTask(ctx context.Context, title, scope string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	payload, err := json.Marshal(models.TaskCreatedPayload{Title: title, Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	taskID := uuid.New().String()
	event := models.Event{
		ID:            uuid.New().String(),
		AggregateID:   taskID,
		AggregateType: models.AggregateTypeTask,
		EventType:     models.EventTypeTaskCreated,
		Payload:       payload,
		Version:       1,
	}

	if err := s.record(ctx, event); err != nil {
		return nil, err
	}

	return s.tasks.GetTask(ctx, taskID)
}

// RetitleTask changes the task title
func (s *service) RetitleTask(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	payload, err := json.Marshal(models.TaskRetitledPayload{Title: title})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return s.command(ctx, id, models.EventTypeTaskRetitled, payload)
}

// MoveTask moves the task to another scope
func (s *service) MoveTask(ctx context.Context, id, scope string) error {
	if scope == "" {
		scope = models.DefaultScope
	}

	payload, err := json.Marshal(models.TaskMovedPayload{Scope: scope})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return s.command(ctx, id, models.EventTypeTaskMoved, payload)
}

// CompleteTask marks the task as done
func (s *service) CompleteTask(ctx context.Context, id string) error {
	return s.command(ctx, id, models.EventTypeTaskCompleted, nil)
}

// ReopenTask clears the done flag
func (s *service) ReopenTask(ctx context.Context, id string) error {
	return s.command(ctx, id, models.EventTypeTaskReopened, nil)
}

// DeleteTask marks the task as deleted (soft delete)
func (s *service) DeleteTask(ctx context.Context, id string) error {
	return s.command(ctx, id, models.EventTypeTaskDeleted, nil)
}

// GetTask returns a task by id
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetTask(ctx, id)
}

// ListTasks returns non-deleted tasks, optionally filtered by scope
func (s *service) ListTasks(ctx context.Context, scope string) ([]*models.Task, error) {
	return s.tasks.ListTasks(ctx, scope)
}

// command записывает событие для существующей задачи. Версия события —
// следующая версия агрегата.
func (s *service) command(ctx context.Context, id, eventType string, payload []byte) error {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	event := models.Event{
		ID:            uuid.New().String(),
		AggregateID:   task.ID,
		AggregateType: models.AggregateTypeTask,
		EventType:     eventType,
		Payload:       payload,
		Version:       task.Version + 1,
	}

	return s.record(ctx, event)
}

// record добавляет событие в журнал и помечает его несинхронизированным
// для всех известных удаленных устройств.
func (s *service) record(ctx context.Context, event models.Event) error {
	if _, err := s.events.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if err := s.bumpPending(ctx); err != nil {
		return fmt.Errorf("failed to update pending changes: %w", err)
	}
	return nil
}

// bumpPending увеличивает счетчик pending changes каждого известного
// устройства. Ревизия записи может уйти из-под нас (конкурентный цикл
// синхронизации), поэтому CAS с ретраями.
func (s *service) bumpPending(ctx context.Context) error {
	states, err := s.states.ListSyncStates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sync states: %w", err)
	}

	for _, state := range states {
		if err := s.bumpPendingOne(ctx, state); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) bumpPendingOne(ctx context.Context, state models.SyncState) error {
	deviceID := state.DeviceID
	for attempt := 0; ; attempt++ {
		next, err := state.IncrementPendingChanges(1)
		if err != nil {
			return err
		}

		_, err = s.states.SaveSyncState(ctx, next)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrStateRevisionMismatch) || attempt >= pendingRetries {
			return fmt.Errorf("failed to save sync state for %s: %w", deviceID, err)
		}

		// Перечитываем актуальную ревизию и повторяем
		state, err = s.states.LoadSyncState(ctx, deviceID)
		if err != nil {
			return fmt.Errorf("failed to reload sync state for %s: %w", deviceID, err)
		}
	}
}
