package models

import (
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
)

// Типы агрегатов, к которым относятся события
const (
	AggregateTypeTask  = "task"
	AggregateTypeScope = "scope"
)

// Event представляет одно доменное событие, записанное устройством.
// События неизменяемы после записи: синхронизация обменивается ими
// между устройствами и применяет идемпотентно по (AggregateID, Version).
type Event struct {
	RecordedAt    time.Time        `json:"recorded_at"`    // RecordedAt физическое время записи (только для диагностики)
	ID            string           `json:"id"`             // ID уникальный идентификатор события (UUID)
	DeviceID      string           `json:"device_id"`      // DeviceID устройство, записавшее событие
	AggregateID   string           `json:"aggregate_id"`   // AggregateID идентификатор агрегата (задачи, scope)
	AggregateType string           `json:"aggregate_type"` // AggregateType тип агрегата ("task", "scope")
	EventType     string           `json:"event_type"`     // EventType тип события (например, "task.created")
	Payload       []byte           `json:"payload"`        // Payload JSON-сериализованные данные события
	Clock         crdt.VectorClock `json:"clock"`          // Clock векторные часы устройства на момент записи
	Version       int64            `json:"version"`        // Version монотонная версия агрегата
}

// Seq возвращает порядковый номер события в журнале устройства-источника.
// По построению равен счетчику собственного устройства в часах события.
func (e Event) Seq() uint64 {
	return e.Clock.Counter(e.DeviceID)
}

// Clone создает глубокую копию события.
func (e Event) Clone() Event {
	payload := make([]byte, len(e.Payload))
	copy(payload, e.Payload)

	clone := e
	clone.Payload = payload
	return clone
}
