package crdt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	clock := New()

	assert.True(t, clock.IsZero())
	assert.Equal(t, 0, clock.Len())
	assert.Equal(t, uint64(0), clock.Counter("a"), "Absent device should read as 0")
}

func TestFromMap(t *testing.T) {
	src := map[string]uint64{"a": 2, "b": 0, "c": 5}
	clock := FromMap(src)

	assert.Equal(t, uint64(2), clock.Counter("a"))
	assert.Equal(t, uint64(5), clock.Counter("c"))
	assert.Equal(t, 2, clock.Len(), "Zero counters should not be stored")

	// Изменение исходной map не должно влиять на часы
	src["a"] = 100
	assert.Equal(t, uint64(2), clock.Counter("a"))
}

func TestVectorClock_Increment(t *testing.T) {
	clock := New()

	c1 := clock.Increment("a")
	assert.Equal(t, uint64(1), c1.Counter("a"))
	assert.Equal(t, uint64(0), clock.Counter("a"), "Original clock must stay unmodified")

	c2 := c1.Increment("a")
	assert.Equal(t, uint64(2), c2.Counter("a"))
	assert.Equal(t, uint64(1), c1.Counter("a"))

	c3 := c2.Increment("b")
	assert.Equal(t, uint64(2), c3.Counter("a"), "Other counters must stay unchanged")
	assert.Equal(t, uint64(1), c3.Counter("b"))

	// increment строго увеличивает часы в причинном порядке
	assert.True(t, c2.HappensBefore(c3))
	assert.Equal(t, OrderingBefore, clock.Compare(c1))
}

func TestVectorClock_Merge(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 3, "b": 1})
	b := FromMap(map[string]uint64{"b": 4, "c": 2})

	merged := a.Merge(b)

	assert.Equal(t, uint64(3), merged.Counter("a"))
	assert.Equal(t, uint64(4), merged.Counter("b"))
	assert.Equal(t, uint64(2), merged.Counter("c"))

	// merge(a,b) >= a и >= b поэлементно
	assert.True(t, merged.Descends(a))
	assert.True(t, merged.Descends(b))

	// Операнды не изменяются
	assert.Equal(t, uint64(1), a.Counter("b"))
	assert.Equal(t, uint64(0), a.Counter("c"))
}

func TestVectorClock_Merge_Commutative(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 3, "b": 1})
	b := FromMap(map[string]uint64{"b": 4, "c": 2})

	assert.True(t, a.Merge(b).Equal(b.Merge(a)), "merge must be commutative")
}

func TestVectorClock_Merge_Idempotent(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 3, "b": 1})

	assert.True(t, a.Merge(a).Equal(a), "merge(a,a) must equal a")
}

func TestVectorClock_Merge_Associative(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 1})
	b := FromMap(map[string]uint64{"b": 2})
	c := FromMap(map[string]uint64{"a": 2, "c": 1})

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	assert.True(t, left.Equal(right), "merge must be associative")
}

func TestVectorClock_Merge_WithEmpty(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 3})

	assert.True(t, a.Merge(New()).Equal(a))
	assert.True(t, New().Merge(a).Equal(a))
}

func TestVectorClock_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a        map[string]uint64
		b        map[string]uint64
		expected Ordering
	}{
		{
			name:     "both empty",
			a:        nil,
			b:        nil,
			expected: OrderingEqual,
		},
		{
			name:     "identical",
			a:        map[string]uint64{"a": 1, "b": 2},
			b:        map[string]uint64{"a": 1, "b": 2},
			expected: OrderingEqual,
		},
		{
			name:     "strictly before",
			a:        map[string]uint64{"a": 1},
			b:        map[string]uint64{"a": 2},
			expected: OrderingBefore,
		},
		{
			name:     "before with extra device",
			a:        map[string]uint64{"a": 1},
			b:        map[string]uint64{"a": 1, "b": 1},
			expected: OrderingBefore,
		},
		{
			name:     "strictly after",
			a:        map[string]uint64{"a": 2, "b": 1},
			b:        map[string]uint64{"a": 1},
			expected: OrderingAfter,
		},
		{
			name:     "concurrent disjoint devices",
			a:        map[string]uint64{"a": 1},
			b:        map[string]uint64{"b": 1},
			expected: OrderingConcurrent,
		},
		{
			name:     "concurrent crossing counters",
			a:        map[string]uint64{"a": 2, "b": 1},
			b:        map[string]uint64{"a": 1, "b": 2},
			expected: OrderingConcurrent,
		},
		{
			name:     "empty before non-empty",
			a:        nil,
			b:        map[string]uint64{"a": 1},
			expected: OrderingBefore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromMap(tt.a)
			b := FromMap(tt.b)

			assert.Equal(t, tt.expected, a.Compare(b))

			// Отношение антисимметрично
			switch tt.expected {
			case OrderingBefore:
				assert.Equal(t, OrderingAfter, b.Compare(a))
			case OrderingAfter:
				assert.Equal(t, OrderingBefore, b.Compare(a))
			case OrderingEqual:
				assert.Equal(t, OrderingEqual, b.Compare(a))
			case OrderingConcurrent:
				assert.Equal(t, OrderingConcurrent, b.Compare(a))
			}
		})
	}
}

func TestVectorClock_ConcurrentWith(t *testing.T) {
	// Сценарий конфликта: два устройства независимо записали событие
	a := New().Increment("device-a")
	b := New().Increment("device-b")

	assert.True(t, a.ConcurrentWith(b))
	assert.True(t, b.ConcurrentWith(a))

	// После merge конкурентность исчезает
	merged := a.Merge(b)
	assert.False(t, merged.ConcurrentWith(a))
	assert.True(t, merged.Descends(a))
	assert.True(t, merged.Descends(b))
}

func TestVectorClock_Descends(t *testing.T) {
	a := FromMap(map[string]uint64{"a": 1})
	b := FromMap(map[string]uint64{"a": 1, "b": 1})

	assert.True(t, b.Descends(a))
	assert.False(t, a.Descends(b))
	assert.True(t, a.Descends(a), "Clock descends itself")
	assert.True(t, a.Descends(New()), "Any clock descends the empty clock")
}

func TestVectorClock_Devices(t *testing.T) {
	clock := FromMap(map[string]uint64{"c": 1, "a": 2, "b": 3})

	assert.Equal(t, []string{"a", "b", "c"}, clock.Devices(), "Devices should be sorted")
}

func TestVectorClock_String(t *testing.T) {
	assert.Equal(t, "{}", New().String())

	clock := FromMap(map[string]uint64{"b": 2, "a": 1})
	assert.Equal(t, "{a:1, b:2}", clock.String())
}

func TestVectorClock_JSON(t *testing.T) {
	clock := FromMap(map[string]uint64{"a": 1, "b": 2})

	data, err := json.Marshal(clock)
	require.NoError(t, err)

	var decoded VectorClock
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, clock.Equal(decoded))

	// Пустые часы сериализуются как {}
	data, err = json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestVectorClock_ZeroValueUsable(t *testing.T) {
	var clock VectorClock

	assert.True(t, clock.IsZero())
	assert.NotPanics(t, func() {
		_ = clock.Increment("a")
		_ = clock.Merge(New())
		_ = clock.Compare(New())
		_ = clock.String()
	})
}
