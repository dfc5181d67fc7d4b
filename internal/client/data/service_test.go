package data

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/models"
)

type fixture struct {
	events *storage.EventStorageMock
	tasks  *storage.TaskStorageMock
	states *storage.SyncStateStorageMock
	svc    Service
}

// newFixture собирает сервис поверх моков: журнал запоминает события,
// проекция отдает заранее заданные задачи, sync state ведет счетчики
// pending changes для двух устройств.
func newFixture(t *testing.T, tasks map[string]*models.Task) *fixture {
	t.Helper()

	f := &fixture{}

	f.events = &storage.EventStorageMock{
		AppendEventFunc: func(ctx context.Context, event models.Event) (models.Event, error) {
			return event, nil
		},
	}

	f.tasks = &storage.TaskStorageMock{
		GetTaskFunc: func(ctx context.Context, id string) (*models.Task, error) {
			if task, ok := tasks[id]; ok {
				return task, nil
			}
			return nil, storage.ErrTaskNotFound
		},
		ListTasksFunc: func(ctx context.Context, scope string) ([]*models.Task, error) {
			var result []*models.Task
			for _, task := range tasks {
				if scope == "" || task.Scope == scope {
					result = append(result, task)
				}
			}
			return result, nil
		},
	}

	stored := map[string]models.SyncState{
		"device-b": {DeviceID: "device-b", Status: models.SyncStatusSuccess, Revision: 1},
		"device-c": {DeviceID: "device-c", Status: models.SyncStatusSuccess, Revision: 1},
	}
	f.states = &storage.SyncStateStorageMock{
		ListSyncStatesFunc: func(ctx context.Context) ([]models.SyncState, error) {
			var result []models.SyncState
			for _, s := range stored {
				result = append(result, s)
			}
			return result, nil
		},
		LoadSyncStateFunc: func(ctx context.Context, deviceID string) (models.SyncState, error) {
			return stored[deviceID], nil
		},
		SaveSyncStateFunc: func(ctx context.Context, state models.SyncState) (models.SyncState, error) {
			if stored[state.DeviceID].Revision != state.Revision {
				return models.SyncState{}, storage.ErrStateRevisionMismatch
			}
			state.Revision++
			stored[state.DeviceID] = state
			return state, nil
		},
	}

	f.svc = NewService(f.events, f.tasks, f.states)
	return f
}

func TestService_AddTask(t *testing.T) {
	ctx := context.Background()

	tasks := map[string]*models.Task{}
	f := newFixture(t, tasks)

	// Проекция "подхватывает" задачу после записи события
	f.events.AppendEventFunc = func(ctx context.Context, event models.Event) (models.Event, error) {
		var p models.TaskCreatedPayload
		require.NoError(t, json.Unmarshal(event.Payload, &p))
		tasks[event.AggregateID] = &models.Task{
			ID:      event.AggregateID,
			Title:   p.Title,
			Scope:   p.Scope,
			Version: event.Version,
		}
		return event, nil
	}

	task, err := f.svc.AddTask(ctx, "buy milk", "errands")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, "errands", task.Scope)
	assert.NotEmpty(t, task.ID)

	// Записано ровно одно событие task.created с версией 1
	appends := f.events.AppendEventCalls()
	require.Len(t, appends, 1)
	assert.Equal(t, models.EventTypeTaskCreated, appends[0].Event.EventType)
	assert.Equal(t, int64(1), appends[0].Event.Version)
	assert.NotEmpty(t, appends[0].Event.ID)

	// Pending changes увеличены для обоих известных устройств
	saves := f.states.SaveSyncStateCalls()
	require.Len(t, saves, 2)
	for _, save := range saves {
		assert.Equal(t, 1, save.State.PendingChanges)
	}
}

func TestService_AddTask_EmptyTitle(t *testing.T) {
	f := newFixture(t, map[string]*models.Task{})

	_, err := f.svc.AddTask(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, f.events.AppendEventCalls())
}

func TestService_CompleteTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "buy milk", Scope: "errands", Version: 3},
	})

	err := f.svc.CompleteTask(ctx, "task-1")
	require.NoError(t, err)

	appends := f.events.AppendEventCalls()
	require.Len(t, appends, 1)
	event := appends[0].Event
	assert.Equal(t, models.EventTypeTaskCompleted, event.EventType)
	assert.Equal(t, "task-1", event.AggregateID)
	// Версия события следует за версией агрегата
	assert.Equal(t, int64(4), event.Version)
}

func TestService_CompleteTask_NotFound(t *testing.T) {
	f := newFixture(t, map[string]*models.Task{})

	err := f.svc.CompleteTask(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
	assert.Empty(t, f.events.AppendEventCalls())
}

func TestService_RetitleTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "old", Version: 1},
	})

	err := f.svc.RetitleTask(ctx, "task-1", "new title")
	require.NoError(t, err)

	appends := f.events.AppendEventCalls()
	require.Len(t, appends, 1)

	var p models.TaskRetitledPayload
	require.NoError(t, json.Unmarshal(appends[0].Event.Payload, &p))
	assert.Equal(t, "new title", p.Title)

	// Пустой заголовок отклоняется до записи события
	err = f.svc.RetitleTask(ctx, "task-1", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestService_MoveTask_DefaultScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "buy milk", Scope: "errands", Version: 1},
	})

	err := f.svc.MoveTask(ctx, "task-1", "")
	require.NoError(t, err)

	appends := f.events.AppendEventCalls()
	require.Len(t, appends, 1)

	var p models.TaskMovedPayload
	require.NoError(t, json.Unmarshal(appends[0].Event.Payload, &p))
	assert.Equal(t, models.DefaultScope, p.Scope)
}

func TestService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "buy milk", Version: 2},
	})

	err := f.svc.DeleteTask(ctx, "task-1")
	require.NoError(t, err)

	appends := f.events.AppendEventCalls()
	require.Len(t, appends, 1)
	assert.Equal(t, models.EventTypeTaskDeleted, appends[0].Event.EventType)
	assert.Equal(t, int64(3), appends[0].Event.Version)
}

func TestService_BumpPending_RetriesOnRevisionMismatch(t *testing.T) {
	ctx := context.Background()

	tasks := map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "buy milk", Version: 1},
	}
	f := newFixture(t, tasks)

	// Первая попытка сохранения проигрывает конкурентному писателю
	failures := 1
	inner := f.states.SaveSyncStateFunc
	f.states.SaveSyncStateFunc = func(ctx context.Context, state models.SyncState) (models.SyncState, error) {
		if failures > 0 {
			failures--
			return models.SyncState{}, storage.ErrStateRevisionMismatch
		}
		return inner(ctx, state)
	}

	err := f.svc.CompleteTask(ctx, "task-1")
	require.NoError(t, err)

	// После неудачи состояние перечитано и сохранение повторено
	assert.NotEmpty(t, f.states.LoadSyncStateCalls())
}

func TestService_ListTasks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]*models.Task{
		"task-1": {ID: "task-1", Title: "buy milk", Scope: "errands"},
		"task-2": {ID: "task-2", Title: "write report", Scope: "work"},
	})

	all, err := f.svc.ListTasks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	work, err := f.svc.ListTasks(ctx, "work")
	require.NoError(t, err)
	require.Len(t, work, 1)
	assert.Equal(t, "task-2", work[0].ID)
}
