package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/iterators"
)

func TestFunc(t *testing.T) {
	t.Run(`yields until the generator reports exhaustion`, func(t *testing.T) {
		current := 0
		i := iterators.Func(func() (int, bool) {
			if current == 3 {
				return 0, false
			}
			current++
			return current, true
		})

		vs, err := iterators.Collect[int](i)
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3}, vs)
	})

	t.Run(`once exhausted it stays exhausted even if the generator recovers`, func(t *testing.T) {
		calls := 0
		i := iterators.Func(func() (int, bool) {
			calls++
			return calls, calls != 1
		})

		require.False(t, i.Next())
		require.False(t, i.Next())
		require.Equal(t, 1, calls)
	})

	t.Run(`closing stops the generator from being called`, func(t *testing.T) {
		i := iterators.Func(func() (int, bool) { return 1, true })
		require.True(t, i.Next())
		require.Nil(t, i.Close())
		require.False(t, i.Next())
	})
}
