package iterators

import (
	"github.com/flgo/flgo"
)

// ForEach calls the block once per value, in traversal order, then closes the iterator.
// Returning Break from the block ends the iteration early without an error.
func ForEach[T any](i flgo.Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return i.Err()
}
