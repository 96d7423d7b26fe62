package iterators

import (
	"github.com/flgo/flgo"
)

// First returns the first value of the iterator and closes it.
// When the iterator yields no value, ErrNotFound is returned.
func First[T any](i flgo.Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		if iErr := i.Err(); iErr != nil {
			return v, iErr
		}
		return v, ErrNotFound
	}

	return i.Value(), i.Err()
}
