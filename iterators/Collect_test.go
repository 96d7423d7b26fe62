package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/iterators"
)

func TestCollect(t *testing.T) {
	t.Run(`no elements in the iterator`, func(t *testing.T) {
		vs, err := iterators.Collect[int](iterators.Empty[int]())
		require.Nil(t, err)
		require.NotNil(t, vs)
		require.Len(t, vs, 0)
	})

	t.Run(`all values fetched in traversal order`, func(t *testing.T) {
		vs, err := iterators.Collect[int](iterators.Slice([]int{1, 2, 3, 4, 5}))
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5}, vs)
	})

	t.Run(`iterator errors are reported`, func(t *testing.T) {
		boom := errors.New(`boom`)
		_, err := iterators.Collect[int](iterators.NewError[int](boom))
		require.Equal(t, boom, err)
	})

	t.Run(`the iterator is closed afterwards`, func(t *testing.T) {
		closed := false
		m := iterators.NewMock[int](iterators.Slice([]int{1}))
		m.StubClose = func() error {
			closed = true
			return nil
		}

		_, err := iterators.Collect[int](m)
		require.Nil(t, err)
		require.True(t, closed)
	})

	t.Run(`close errors are reported when nothing else failed`, func(t *testing.T) {
		boom := errors.New(`close boom`)
		m := iterators.NewMock[int](iterators.Slice([]int{1}))
		m.StubClose = func() error { return boom }

		_, err := iterators.Collect[int](m)
		require.Equal(t, boom, err)
	})
}
