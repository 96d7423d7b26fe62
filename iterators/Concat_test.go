package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo"
	"github.com/flgo/flgo/iterators"
)

func TestConcat(t *testing.T) {
	t.Run(`yields every source in argument order`, func(t *testing.T) {
		i := iterators.Concat[int](
			iterators.Slice([]int{1, 2}),
			iterators.Empty[int](),
			iterators.Slice([]int{3}),
		)

		vs, err := iterators.Collect[int](i)
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3}, vs)
	})

	t.Run(`no sources make an empty iterator`, func(t *testing.T) {
		vs, err := iterators.Collect[int](iterators.Concat[int]())
		require.Nil(t, err)
		require.Len(t, vs, 0)
	})

	t.Run(`an erroring source aborts the traversal`, func(t *testing.T) {
		boom := errors.New(`boom`)
		i := iterators.Concat[int](
			iterators.Slice([]int{1}),
			iterators.NewError[int](boom),
			iterators.Slice([]int{2}),
		)

		var vs []int
		for i.Next() {
			vs = append(vs, i.Value())
		}

		require.Equal(t, []int{1}, vs)
		require.Equal(t, boom, i.Err())
	})

	t.Run(`closing closes the remaining sources`, func(t *testing.T) {
		var closed []string
		mk := func(name string, vs []int) flgo.Iterator[int] {
			m := iterators.NewMock[int](iterators.Slice(vs))
			m.StubClose = func() error {
				closed = append(closed, name)
				return nil
			}
			return m
		}

		i := iterators.Concat[int](mk(`a`, []int{1}), mk(`b`, []int{2}))
		require.True(t, i.Next())
		require.Nil(t, i.Close())
		require.ElementsMatch(t, []string{`a`, `b`}, closed)
	})
}
