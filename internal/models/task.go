package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DefaultScope контекст по умолчанию для задач без явного scope
const DefaultScope = "inbox"

// Типы событий задачи
const (
	EventTypeTaskCreated   = "task.created"
	EventTypeTaskRetitled  = "task.retitled"
	EventTypeTaskMoved     = "task.moved"
	EventTypeTaskCompleted = "task.completed"
	EventTypeTaskReopened  = "task.reopened"
	EventTypeTaskDeleted   = "task.deleted"
)

// ErrUnknownEventType событие с неизвестным типом не может быть применено
var ErrUnknownEventType = errors.New("unknown task event type")

// Task представляет проекцию агрегата задачи, построенную из событий.
// Проекция хранится локально для быстрых чтений; источником истины
// остается журнал событий.
type Task struct {
	CreatedAt   time.Time `json:"created_at"`   // CreatedAt время создания задачи
	CompletedAt time.Time `json:"completed_at"` // CompletedAt время завершения (zero = не завершена)
	ID          string    `json:"id"`           // ID уникальный идентификатор задачи (UUID)
	Title       string    `json:"title"`        // Title текст задачи
	Scope       string    `json:"scope"`        // Scope контекст, к которому относится задача
	Version     int64     `json:"version"`      // Version версия агрегата (номер последнего примененного события)
	Done        bool      `json:"done"`         // Done флаг завершения
	Deleted     bool      `json:"deleted"`      // Deleted флаг soft delete
}

// TaskCreatedPayload данные события task.created
type TaskCreatedPayload struct {
	Title string `json:"title"`
	Scope string `json:"scope"`
}

// TaskRetitledPayload данные события task.retitled
type TaskRetitledPayload struct {
	Title string `json:"title"`
}

// TaskMovedPayload данные события task.moved
type TaskMovedPayload struct {
	Scope string `json:"scope"`
}

// ReduceTask применяет событие к текущей проекции задачи и возвращает новую
// проекцию. prev == nil означает, что задача еще не существует (допустимо
// только для task.created). Редьюсер чистый: используется и при записи
// локальных событий, и при применении событий, полученных от других устройств.
func ReduceTask(prev *Task, event Event) (*Task, error) {
	if event.AggregateType != AggregateTypeTask {
		return nil, fmt.Errorf("reduce task: aggregate type %q: %w", event.AggregateType, ErrUnknownEventType)
	}

	var task Task
	if prev != nil {
		task = *prev
	} else {
		task = Task{ID: event.AggregateID, CreatedAt: event.RecordedAt}
	}

	switch event.EventType {
	case EventTypeTaskCreated:
		var p TaskCreatedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task.created payload: %w", err)
		}
		task.Title = p.Title
		task.Scope = p.Scope
		if task.Scope == "" {
			task.Scope = DefaultScope
		}

	case EventTypeTaskRetitled:
		var p TaskRetitledPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task.retitled payload: %w", err)
		}
		task.Title = p.Title

	case EventTypeTaskMoved:
		var p TaskMovedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task.moved payload: %w", err)
		}
		task.Scope = p.Scope

	case EventTypeTaskCompleted:
		task.Done = true
		task.CompletedAt = event.RecordedAt

	case EventTypeTaskReopened:
		task.Done = false
		task.CompletedAt = time.Time{}

	case EventTypeTaskDeleted:
		task.Deleted = true

	default:
		return nil, fmt.Errorf("reduce task: event type %q: %w", event.EventType, ErrUnknownEventType)
	}

	task.Version = event.Version
	return &task, nil
}
