package api

import "time"

// SyncEvent представляет одно событие журнала в wire-формате.
// Векторные часы передаются как map device_id -> counter.
type SyncEvent struct {
	RecordedAt    time.Time         `json:"recorded_at"`
	ID            string            `json:"id"`
	DeviceID      string            `json:"device_id"`
	AggregateID   string            `json:"aggregate_id"`
	AggregateType string            `json:"aggregate_type"`
	EventType     string            `json:"event_type"`
	Payload       []byte            `json:"payload"`
	Clock         map[string]uint64 `json:"clock"`
	Version       int64             `json:"version"`
}

// ClockResponse представляет ответ сервера с его текущими векторными часами
type ClockResponse struct {
	DeviceID string            `json:"device_id"` // идентификатор реплики сервера
	Clock    map[string]uint64 `json:"clock"`     // текущие часы сервера
}

// PullRequest представляет запрос клиента на новые события.
// Since — векторные часы клиента: сервер возвращает события,
// не отраженные в них.
type PullRequest struct {
	Since map[string]uint64 `json:"since"`
}

// PullResponse представляет ответ сервера с новыми событиями
type PullResponse struct {
	Events []SyncEvent       `json:"events"`
	Clock  map[string]uint64 `json:"clock"` // часы сервера на момент ответа
}

// PushRequest представляет передачу локальных событий клиента серверу
type PushRequest struct {
	Events []SyncEvent `json:"events"`
}

// PushResponse представляет ответ сервера на push
type PushResponse struct {
	Accepted int               `json:"accepted"` // количество впервые примененных событий
	Clock    map[string]uint64 `json:"clock"`    // часы сервера после применения
}
