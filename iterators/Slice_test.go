package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo"
	"github.com/flgo/flgo/iterators"
)

var _ flgo.Iterator[int] = iterators.Slice([]int{})

func TestSlice(t *testing.T) {
	t.Run(`given we have a slice iterator`, func(t *testing.T) {
		t.Parallel()

		expected := []int{1, 2, 3, 4, 5}
		i := iterators.Slice(expected)

		var actually []int
		for i.Next() {
			actually = append(actually, i.Value())
		}

		require.Nil(t, i.Err())
		require.Nil(t, i.Close())
		require.Equal(t, expected, actually)
	})

	t.Run(`when it is closed, no further value is yielded`, func(t *testing.T) {
		t.Parallel()

		i := iterators.Slice([]string{`a`, `b`, `c`})
		require.True(t, i.Next())
		require.Nil(t, i.Close())
		require.False(t, i.Next())
	})

	t.Run(`value is repeatable without advancing`, func(t *testing.T) {
		t.Parallel()

		i := iterators.Slice([]int{42})
		require.True(t, i.Next())
		require.Equal(t, 42, i.Value())
		require.Equal(t, 42, i.Value())
		require.False(t, i.Next())
	})
}
