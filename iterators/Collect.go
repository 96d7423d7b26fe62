package iterators

import (
	"github.com/flgo/flgo"
)

// Collect drains the iterator into a slice, preserving the traversal order, then closes it.
func Collect[T any](i flgo.Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	vs = []T{}
	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
