package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scopekeeper/internal/crdt"
)

func taskEvent(t *testing.T, aggregateID, eventType string, version int64, payload any) Event {
	t.Helper()

	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	return Event{
		ID:            "evt-" + eventType,
		DeviceID:      "device-a",
		AggregateID:   aggregateID,
		AggregateType: AggregateTypeTask,
		EventType:     eventType,
		Version:       version,
		Payload:       data,
		Clock:         crdt.New().Increment("device-a"),
		RecordedAt:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestReduceTask_Created(t *testing.T) {
	event := taskEvent(t, "task-1", EventTypeTaskCreated, 1, TaskCreatedPayload{Title: "write report", Scope: "work"})

	task, err := ReduceTask(nil, event)
	require.NoError(t, err)

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, "work", task.Scope)
	assert.Equal(t, int64(1), task.Version)
	assert.False(t, task.Done)
	assert.False(t, task.Deleted)
}

func TestReduceTask_Created_DefaultScope(t *testing.T) {
	event := taskEvent(t, "task-1", EventTypeTaskCreated, 1, TaskCreatedPayload{Title: "misc"})

	task, err := ReduceTask(nil, event)
	require.NoError(t, err)
	assert.Equal(t, DefaultScope, task.Scope)
}

func TestReduceTask_Lifecycle(t *testing.T) {
	task, err := ReduceTask(nil, taskEvent(t, "task-1", EventTypeTaskCreated, 1, TaskCreatedPayload{Title: "draft", Scope: "work"}))
	require.NoError(t, err)

	task, err = ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskRetitled, 2, TaskRetitledPayload{Title: "final"}))
	require.NoError(t, err)
	assert.Equal(t, "final", task.Title)

	task, err = ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskMoved, 3, TaskMovedPayload{Scope: "personal"}))
	require.NoError(t, err)
	assert.Equal(t, "personal", task.Scope)

	task, err = ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskCompleted, 4, nil))
	require.NoError(t, err)
	assert.True(t, task.Done)
	assert.False(t, task.CompletedAt.IsZero())

	task, err = ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskReopened, 5, nil))
	require.NoError(t, err)
	assert.False(t, task.Done)
	assert.True(t, task.CompletedAt.IsZero())

	task, err = ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskDeleted, 6, nil))
	require.NoError(t, err)
	assert.True(t, task.Deleted)
	assert.Equal(t, int64(6), task.Version)
}

func TestReduceTask_Immutable(t *testing.T) {
	task, err := ReduceTask(nil, taskEvent(t, "task-1", EventTypeTaskCreated, 1, TaskCreatedPayload{Title: "a"}))
	require.NoError(t, err)

	next, err := ReduceTask(task, taskEvent(t, "task-1", EventTypeTaskRetitled, 2, TaskRetitledPayload{Title: "b"}))
	require.NoError(t, err)

	assert.Equal(t, "a", task.Title, "Previous projection must stay unchanged")
	assert.Equal(t, "b", next.Title)
}

func TestReduceTask_UnknownEventType(t *testing.T) {
	_, err := ReduceTask(nil, taskEvent(t, "task-1", "task.exploded", 1, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestReduceTask_WrongAggregateType(t *testing.T) {
	event := taskEvent(t, "task-1", EventTypeTaskCreated, 1, TaskCreatedPayload{Title: "x"})
	event.AggregateType = AggregateTypeScope

	_, err := ReduceTask(nil, event)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestEvent_Seq(t *testing.T) {
	event := Event{
		DeviceID: "device-a",
		Clock:    crdt.FromMap(map[string]uint64{"device-a": 7, "device-b": 3}),
	}

	assert.Equal(t, uint64(7), event.Seq(), "Seq is the origin device counter in the event clock")
}

func TestEvent_Clone(t *testing.T) {
	event := Event{ID: "evt-1", Payload: []byte(`{"title":"x"}`)}

	clone := event.Clone()
	clone.Payload[0] = '!'

	assert.Equal(t, byte('{'), event.Payload[0], "Clone must deep-copy the payload")
}
