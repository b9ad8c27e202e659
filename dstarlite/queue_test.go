package dstarlite

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenQueue_Order(t *testing.T) {
	q := newOpenQueue[string, int](0)
	q.push("c", Priority[int]{K1: 3, K2: 0})
	q.push("a", Priority[int]{K1: 1, K2: 5})
	q.push("b", Priority[int]{K1: 1, K2: 7})
	require.Equal(t, 3, q.Len())

	n, k, ok := q.peek()
	require.True(t, ok)
	assert.Equal(t, "a", n)
	assert.Equal(t, Priority[int]{K1: 1, K2: 5}, k)

	var got []string
	for q.Len() > 0 {
		n, _ := q.pop()
		got = append(got, n)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, _, ok = q.peek()
	assert.False(t, ok)
}

func TestOpenQueue_RekeyAndRemove(t *testing.T) {
	q := newOpenQueue[int, int](4)
	for i := 0; i < 5; i++ {
		q.push(i, Priority[int]{K1: i, K2: i})
	}
	// Re-key in place; no duplicate entry.
	q.push(4, Priority[int]{K1: -1, K2: 0})
	require.Equal(t, 5, q.Len())
	n, _, _ := q.peek()
	assert.Equal(t, 4, n)

	q.remove(0)
	q.remove(42) // not queued: no-op
	assert.False(t, q.contains(0))
	assert.True(t, q.contains(2))
	require.Equal(t, 4, q.Len())

	var got []int
	for q.Len() > 0 {
		n, _ := q.pop()
		got = append(got, n)
	}
	assert.Equal(t, []int{4, 1, 2, 3}, got)
	assert.Empty(t, q.index)
}

// TestOpenQueue_Random checks heap order and index bookkeeping under churn.
func TestOpenQueue_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := newOpenQueue[int, int](0)
	keys := map[int]int{}
	for i := 0; i < 2000; i++ {
		n := rng.Intn(100)
		switch rng.Intn(3) {
		case 0, 1:
			k := rng.Intn(1000)
			q.push(n, Priority[int]{K1: k})
			keys[n] = k
		case 2:
			q.remove(n)
			delete(keys, n)
		}
		require.Equal(t, len(keys), q.Len())
	}
	for idx, item := range q.items {
		require.Equal(t, idx, item.index)
	}
	last := -1
	for q.Len() > 0 {
		n, k := q.pop()
		require.Equal(t, keys[n], k.K1)
		require.GreaterOrEqual(t, k.K1, last)
		last = k.K1
	}
}

func TestPriority_Less(t *testing.T) {
	assert.True(t, Priority[int]{1, 9}.Less(Priority[int]{2, 0}))
	assert.True(t, Priority[int]{1, 1}.Less(Priority[int]{1, 2}))
	assert.False(t, Priority[int]{1, 2}.Less(Priority[int]{1, 2}))
	assert.False(t, Priority[int]{2, 0}.Less(Priority[int]{1, 9}))
}

func TestSaturatingAdd(t *testing.T) {
	p := &Planner[int, uint8]{inf: MaxWeight[uint8]()}
	assert.Equal(t, uint8(30), p.add(10, 20))
	assert.Equal(t, uint8(255), p.add(200, 100))
	assert.Equal(t, uint8(255), p.add(255, 0))
	assert.Equal(t, uint8(255), p.add(0, 255))
	assert.Equal(t, uint8(254), p.add(254, 0))

	q := &Planner[int, int]{inf: 100}
	assert.Equal(t, 100, q.add(60, 50))
	assert.Equal(t, 99, q.add(49, 50))
	assert.Equal(t, 100, q.clampHeuristic(500))
	assert.Equal(t, 7, q.clampHeuristic(7))
}
