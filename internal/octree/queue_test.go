package octree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Order(t *testing.T) {
	q := &Queue{}
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Push(Box{Count: 1, Distance: 0})
	q.Push(Box{Count: 3, Distance: 9})
	q.Push(Box{Count: 3, Distance: 2})
	q.Push(Box{Count: 2, Distance: 1})
	require.Equal(t, 4, q.Len())

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top.Count)
	assert.EqualValues(t, 2, top.Distance)

	var got []int
	for q.Len() > 0 {
		b, _ := q.Pop()
		got = append(got, b.Count*100+int(b.Distance))
	}
	assert.Equal(t, []int{302, 309, 201, 100}, got)
}
