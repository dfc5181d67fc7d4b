package crdt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Ordering описывает причинное отношение между двумя векторными часами.
type Ordering int

const (
	// OrderingEqual часы идентичны
	OrderingEqual Ordering = iota
	// OrderingBefore первые часы причинно предшествуют вторым (a < b)
	OrderingBefore
	// OrderingAfter первые часы причинно следуют за вторыми (a > b)
	OrderingAfter
	// OrderingConcurrent часы несравнимы — события конкурентны
	OrderingConcurrent
)

// String возвращает текстовое представление отношения.
func (o Ordering) String() string {
	switch o {
	case OrderingEqual:
		return "equal"
	case OrderingBefore:
		return "before"
	case OrderingAfter:
		return "after"
	case OrderingConcurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

// VectorClock представляет векторные часы: отображение device_id -> счетчик.
// Используется для установления частичного причинного порядка событий
// между устройствами без синхронизации физического времени.
//
// Значение иммутабельно: все операции возвращают новые часы, не изменяя
// исходные. Снимки часов, сохраненные в SyncState, остаются валидными
// после вычисления более новых значений. Нулевое значение VectorClock{}
// эквивалентно пустым часам.
type VectorClock struct {
	counters map[string]uint64
}

// New создает пустые векторные часы (все счетчики равны нулю).
func New() VectorClock {
	return VectorClock{}
}

// FromMap создает векторные часы из map device_id -> счетчик.
// Входная map копируется, нулевые счетчики не сохраняются.
func FromMap(counters map[string]uint64) VectorClock {
	if len(counters) == 0 {
		return VectorClock{}
	}
	m := make(map[string]uint64, len(counters))
	for id, n := range counters {
		if n > 0 {
			m[id] = n
		}
	}
	return VectorClock{counters: m}
}

// Counter возвращает счетчик устройства. Отсутствующий ключ означает 0.
func (c VectorClock) Counter(deviceID string) uint64 {
	return c.counters[deviceID]
}

// Len возвращает количество устройств с ненулевым счетчиком.
func (c VectorClock) Len() int {
	return len(c.counters)
}

// IsZero сообщает, являются ли часы пустыми.
func (c VectorClock) IsZero() bool {
	return len(c.counters) == 0
}

// Devices возвращает отсортированный список устройств с ненулевым счетчиком.
func (c VectorClock) Devices() []string {
	ids := make([]string, 0, len(c.counters))
	for id := range c.counters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Increment возвращает новые часы, в которых счетчик deviceID увеличен
// на единицу. Остальные счетчики не изменяются.
func (c VectorClock) Increment(deviceID string) VectorClock {
	m := make(map[string]uint64, len(c.counters)+1)
	for id, n := range c.counters {
		m[id] = n
	}
	m[deviceID]++
	return VectorClock{counters: m}
}

// Merge возвращает новые часы с поэлементным максимумом счетчиков обоих
// операндов. Операция коммутативна, ассоциативна и идемпотентна.
func (c VectorClock) Merge(other VectorClock) VectorClock {
	if other.IsZero() {
		return c
	}
	if c.IsZero() {
		return other
	}
	m := make(map[string]uint64, len(c.counters)+len(other.counters))
	for id, n := range c.counters {
		m[id] = n
	}
	for id, n := range other.counters {
		if n > m[id] {
			m[id] = n
		}
	}
	return VectorClock{counters: m}
}

// Compare определяет причинное отношение между часами:
//   - OrderingEqual:      a == b
//   - OrderingBefore:     a < b (каждый счетчик a <= b и хотя бы один строго меньше)
//   - OrderingAfter:      a > b
//   - OrderingConcurrent: часы несравнимы
func (c VectorClock) Compare(other VectorClock) Ordering {
	lessSomewhere := false
	greaterSomewhere := false

	for id, n := range c.counters {
		o := other.counters[id]
		if n < o {
			lessSomewhere = true
		} else if n > o {
			greaterSomewhere = true
		}
	}
	for id, o := range other.counters {
		if _, ok := c.counters[id]; ok {
			continue
		}
		if o > 0 {
			lessSomewhere = true
		}
	}

	switch {
	case lessSomewhere && greaterSomewhere:
		return OrderingConcurrent
	case lessSomewhere:
		return OrderingBefore
	case greaterSomewhere:
		return OrderingAfter
	default:
		return OrderingEqual
	}
}

// Equal сообщает, идентичны ли часы.
func (c VectorClock) Equal(other VectorClock) bool {
	return c.Compare(other) == OrderingEqual
}

// HappensBefore сообщает, предшествуют ли часы строго часам other (c < other).
func (c VectorClock) HappensBefore(other VectorClock) bool {
	return c.Compare(other) == OrderingBefore
}

// Descends сообщает, покрывают ли часы все события, отраженные в other
// (other <= c). Используется для фильтрации уже доставленных событий.
func (c VectorClock) Descends(other VectorClock) bool {
	switch c.Compare(other) {
	case OrderingEqual, OrderingAfter:
		return true
	default:
		return false
	}
}

// ConcurrentWith сообщает, несравнимы ли часы — сигнал конфликта.
func (c VectorClock) ConcurrentWith(other VectorClock) bool {
	return c.Compare(other) == OrderingConcurrent
}

// ToMap возвращает копию счетчиков в виде map. Используется для сериализации
// на wire-уровне (pkg/api) и в хранилищах.
func (c VectorClock) ToMap() map[string]uint64 {
	m := make(map[string]uint64, len(c.counters))
	for id, n := range c.counters {
		m[id] = n
	}
	return m
}

// String возвращает детерминированное представление вида {a:1, b:2}.
func (c VectorClock) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range c.Devices() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%d", id, c.counters[id])
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON сериализует часы как JSON-объект device_id -> счетчик.
func (c VectorClock) MarshalJSON() ([]byte, error) {
	if c.counters == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.counters)
}

// UnmarshalJSON десериализует часы из JSON-объекта.
func (c *VectorClock) UnmarshalJSON(data []byte) error {
	var m map[string]uint64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to unmarshal vector clock: %w", err)
	}
	*c = FromMap(m)
	return nil
}
