package sync

import (
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
)

// ConflictRecord описывает конкурентное изменение одного агрегата двумя
// устройствами: локальное и удаленное события с несравнимыми векторными
// часами. Запись не сохраняется детектором — она передается внешней
// политике разрешения (пользователю), автоматический выбор победителя
// запрещен, потому что может молча потерять изменения.
type ConflictRecord struct {
	DetectedAt    time.Time    `json:"detected_at"`    // DetectedAt время обнаружения конфликта
	AggregateID   string       `json:"aggregate_id"`   // AggregateID агрегат, затронутый обоими событиями
	AggregateType string       `json:"aggregate_type"` // AggregateType тип агрегата
	Local         models.Event `json:"local"`          // Local локальное событие
	Remote        models.Event `json:"remote"`         // Remote удаленное событие
}

// Detector классифицирует пары событий одного агрегата как причинно
// упорядоченные либо конкурентные, сравнивая их векторные часы.
type Detector struct {
	now func() time.Time
}

// NewDetector создает детектор конфликтов.
func NewDetector() *Detector {
	return &Detector{now: time.Now}
}

// Classify возвращает причинное отношение между часами двух событий.
func (d *Detector) Classify(a, b models.Event) crdt.Ordering {
	return a.Clock.Compare(b.Clock)
}

// Detect находит агрегаты, измененные конкурентно обеими сторонами.
// Для каждого агрегата, присутствующего и в локальном, и в удаленном
// наборе, сравниваются последние события сторон: если их часы
// несравнимы — возвращается ConflictRecord. Причинно упорядоченные пары
// конфликтом не являются: более позднее событие просто применяется.
func (d *Detector) Detect(local, remote []models.Event) []ConflictRecord {
	latestLocal := latestByAggregate(local)

	var conflicts []ConflictRecord
	seen := make(map[string]bool)

	for _, remoteEvent := range latestByAggregateOrdered(remote) {
		localEvent, ok := latestLocal[remoteEvent.AggregateID]
		if !ok || seen[remoteEvent.AggregateID] {
			continue
		}

		if d.Classify(localEvent, remoteEvent) == crdt.OrderingConcurrent {
			seen[remoteEvent.AggregateID] = true
			conflicts = append(conflicts, ConflictRecord{
				AggregateID:   remoteEvent.AggregateID,
				AggregateType: remoteEvent.AggregateType,
				Local:         localEvent,
				Remote:        remoteEvent,
				DetectedAt:    d.now(),
			})
		}
	}

	return conflicts
}

// latestByAggregate возвращает последнее (по версии агрегата) событие
// каждого агрегата.
func latestByAggregate(events []models.Event) map[string]models.Event {
	latest := make(map[string]models.Event, len(events))
	for _, e := range events {
		if prev, ok := latest[e.AggregateID]; !ok || e.Version > prev.Version {
			latest[e.AggregateID] = e
		}
	}
	return latest
}

// latestByAggregateOrdered то же, но сохраняет порядок появления агрегатов
// во входном наборе, чтобы результат Detect был детерминированным.
func latestByAggregateOrdered(events []models.Event) []models.Event {
	latest := latestByAggregate(events)

	result := make([]models.Event, 0, len(latest))
	emitted := make(map[string]bool, len(latest))
	for _, e := range events {
		if emitted[e.AggregateID] {
			continue
		}
		emitted[e.AggregateID] = true
		result = append(result, latest[e.AggregateID])
	}
	return result
}
