package iterators

import (
	"github.com/flgo/flgo"
)

// Last drains the iterator and returns its final value.
// When the iterator yields no value, ErrNotFound is returned.
func Last[T any](i flgo.Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	iterated := false
	for i.Next() {
		iterated = true
		v = i.Value()
	}

	if err := i.Err(); err != nil {
		return v, err
	}

	if !iterated {
		return v, ErrNotFound
	}

	return v, nil
}
