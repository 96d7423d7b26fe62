package it_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/it"
	"github.com/flgo/flgo/iterators"
)

func TestResult(t *testing.T) {
	res, err := it.New([]int{1, 2, 3}).Map(`|v| v * 2`).Collect()
	require.Nil(t, err)

	t.Run(`Unwrap exposes the values in traversal order`, func(t *testing.T) {
		require.Equal(t, []interface{}{2, 4, 6}, res.Unwrap())
	})

	t.Run(`Len reports the number of values`, func(t *testing.T) {
		require.Equal(t, 3, res.Len())
	})

	t.Run(`String renders the tagged sequence literal`, func(t *testing.T) {
		require.Equal(t, `ItO<[2, 4, 6]>`, res.String())
	})

	t.Run(`ForEach chains without losing the value`, func(t *testing.T) {
		var seen []interface{}
		same := res.ForEach(func(v interface{}) { seen = append(seen, v) })

		require.Equal(t, []interface{}{2, 4, 6}, seen)
		require.True(t, same == res, `for_each must return the result itself`)
	})

	t.Run(`ForEach stops on Break`, func(t *testing.T) {
		var seen []interface{}
		res.ForEach(func(v interface{}) error {
			if len(seen) == 2 {
				return iterators.Break
			}
			seen = append(seen, v)
			return nil
		})
		require.Equal(t, []interface{}{2, 4}, seen)
	})

	t.Run(`a result can be re-wrapped for further chaining`, func(t *testing.T) {
		out, err := it.New(res).Filter(`|v| v > 2`).Collect()
		require.Nil(t, err)
		require.Equal(t, []interface{}{4, 6}, out.Unwrap())
	})
}
