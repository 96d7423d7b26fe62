package it_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/it"
	"github.com/flgo/flgo/iterators"
)

func TestIt_Collect(t *testing.T) {
	t.Run(`the sample pipeline`, func(t *testing.T) {
		res, err := it.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
			Map(`|v| v * v`).
			Filter(`|v| v % 3 == 0`).
			Skip(1).
			Collect()
		require.Nil(t, err)
		require.Equal(t, []interface{}{36, 81}, res.Unwrap())
		require.Equal(t, `ItO<[36, 81]>`, res.String())
	})

	t.Run(`an empty source collects into an empty result`, func(t *testing.T) {
		res, err := it.New([]int{}).Collect()
		require.Nil(t, err)
		require.Equal(t, 0, res.Len())
		require.Equal(t, `ItO<[]>`, res.String())
	})
}

func TestIt_ForEach(t *testing.T) {
	t.Run(`invokes the callable per element and still returns the collected result`, func(t *testing.T) {
		var seen []interface{}
		res, err := it.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
			Map(`|v| v * v`).
			Filter(`|v| v % 3 == 0`).
			Skip(1).
			ForEach(func(v interface{}) { seen = append(seen, v) })
		require.Nil(t, err)

		require.Equal(t, []interface{}{36, 81}, seen)
		require.Equal(t, []interface{}{36, 81}, res.Unwrap(), `for_each must return what collect would`)
	})

	t.Run(`the callable may be a textual lambda`, func(t *testing.T) {
		res, err := it.New([]int{1, 2}).ForEach(`|v| v`)
		require.Nil(t, err)
		require.Equal(t, []interface{}{1, 2}, res.Unwrap())
	})

	t.Run(`Break ends the iteration early, keeping what was visited`, func(t *testing.T) {
		res, err := it.New([]int{1, 2, 3}).ForEach(func(v int) error {
			if v == 3 {
				return iterators.Break
			}
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, []interface{}{1, 2}, res.Unwrap())
	})

	t.Run(`callable failures abort with a transform error`, func(t *testing.T) {
		boom := fmt.Errorf(`boom`)
		_, err := it.New([]int{1, 2}).ForEach(func(v int) error {
			if v == 2 {
				return boom
			}
			return nil
		})

		tErr, ok := err.(*it.TransformError)
		require.True(t, ok)
		require.Equal(t, `for_each`, tErr.Op)
		require.Equal(t, 1, tErr.Index)
		require.Equal(t, boom, tErr.Cause())
	})
}

func TestIt_Reduce(t *testing.T) {
	t.Run(`folds left to right starting from the initial value`, func(t *testing.T) {
		out, err := it.New([]int{1, 2, 3}).Reduce(`|acc, v| acc + v`, 10)
		require.Nil(t, err)
		require.Equal(t, 16, out)
	})

	t.Run(`without an initial value the first element seeds the fold`, func(t *testing.T) {
		out, err := it.New([]string{`a`, `b`, `c`}).Reduce(`|acc, v| acc + v`)
		require.Nil(t, err)
		require.Equal(t, `abc`, out)
	})

	t.Run(`an empty sequence with an initial value returns it unchanged`, func(t *testing.T) {
		out, err := it.New([]int{}).Reduce(`|acc, v| acc + v`, 42)
		require.Nil(t, err)
		require.Equal(t, 42, out)
	})

	t.Run(`an empty sequence without an initial value fails`, func(t *testing.T) {
		_, err := it.New([]int{}).Reduce(`|acc, v| acc + v`)
		require.Equal(t, it.ErrEmptySequence, err)
	})

	t.Run(`an empty surviving sequence counts as empty too`, func(t *testing.T) {
		_, err := it.New([]int{1, 2, 3}).Filter(`|v| v > 10`).Reduce(`|acc, v| acc + v`)
		require.Equal(t, it.ErrEmptySequence, err)
	})

	t.Run(`native fold functions work as well`, func(t *testing.T) {
		out, err := it.New([]int{1, 2, 3, 4}).Reduce(func(acc, v int) int { return acc * v }, 1)
		require.Nil(t, err)
		require.Equal(t, 24, out)
	})

	t.Run(`a failing fold aborts with a transform error`, func(t *testing.T) {
		_, err := it.New([]int{1, 0, 3}).Reduce(`|acc, v| acc / v`, 10)
		tErr, ok := err.(*it.TransformError)
		require.True(t, ok)
		require.Equal(t, `reduce`, tErr.Op)
	})
}

func TestIt_Chain(t *testing.T) {
	t.Run(`concatenates the pipeline output with further sources`, func(t *testing.T) {
		vs := collectValues(t, it.New([]int{1, 2, 3}).Map(`|v| v * 2`).Chain([]int{10, 11}))
		require.Equal(t, []interface{}{2, 4, 6, 10, 11}, vs)
	})

	t.Run(`chained sources accept the same forms as New`, func(t *testing.T) {
		other := it.New([]int{7, 8}).Filter(`|v| v > 7`)
		vs := collectValues(t, it.New([]int{1}).Chain(other, iterators.Range(4, 6)))
		require.Equal(t, []interface{}{1, 8, 4, 5}, vs)
	})
}

func TestIt_queryTerminals(t *testing.T) {
	t.Run(`First returns the first surviving element`, func(t *testing.T) {
		v, err := it.New([]int{1, 2, 3}).Filter(`|v| v > 1`).First()
		require.Nil(t, err)
		require.Equal(t, 2, v)

		_, err = it.New([]int{}).First()
		require.Equal(t, iterators.ErrNotFound, err)
	})

	t.Run(`First pulls no more than it needs`, func(t *testing.T) {
		pulls := 0
		src := it.New(func() (interface{}, bool) {
			pulls++
			return pulls, true
		})

		v, err := src.First()
		require.Nil(t, err)
		require.Equal(t, 1, v)
		require.Equal(t, 1, pulls)
	})

	t.Run(`Last returns the final surviving element`, func(t *testing.T) {
		v, err := it.New([]int{1, 2, 3}).Last()
		require.Nil(t, err)
		require.Equal(t, 3, v)

		_, err = it.New([]int{}).Last()
		require.Equal(t, iterators.ErrNotFound, err)
	})

	t.Run(`Count reports the number of survivors`, func(t *testing.T) {
		n, err := it.New([]int{1, 2, 3, 4}).Filter(`|v| v % 2 == 0`).Count()
		require.Nil(t, err)
		require.Equal(t, 2, n)
	})
}

func TestIt_minMaxTerminals(t *testing.T) {
	t.Run(`numeric extremes`, func(t *testing.T) {
		min, err := it.New([]int{3, 1, 4, 1, 5}).Min()
		require.Nil(t, err)
		require.Equal(t, 1, min)

		max, err := it.New([]int{3, 1, 4, 1, 5}).Max()
		require.Nil(t, err)
		require.Equal(t, 5, max)

		lo, hi, err := it.New([]int{3, 1, 4, 1, 5}).MinMax()
		require.Nil(t, err)
		require.Equal(t, 1, lo)
		require.Equal(t, 5, hi)
	})

	t.Run(`string extremes use lexicographic order`, func(t *testing.T) {
		lo, hi, err := it.New([]string{`pear`, `apple`, `plum`}).MinMax()
		require.Nil(t, err)
		require.Equal(t, `apple`, lo)
		require.Equal(t, `plum`, hi)
	})

	t.Run(`an empty sequence fails`, func(t *testing.T) {
		_, err := it.New([]int{}).Min()
		require.Equal(t, it.ErrEmptySequence, err)
		_, _, err = it.New([]int{}).MinMax()
		require.Equal(t, it.ErrEmptySequence, err)
	})

	t.Run(`mixed incomparable elements fail`, func(t *testing.T) {
		_, err := it.New([]interface{}{1, `x`}).Min()
		require.Error(t, err)
	})
}
