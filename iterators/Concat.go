package iterators

import (
	"github.com/flgo/flgo"
)

// Concat returns an iterator that yields every element of the given iterators, in argument order.
// Each source iterator is closed as soon as it is exhausted.
func Concat[T any](iters ...flgo.Iterator[T]) *ConcatIter[T] {
	return &ConcatIter[T]{iters: iters}
}

type ConcatIter[T any] struct {
	iters []flgo.Iterator[T]

	closed bool
	err    error
}

func (i *ConcatIter[T]) Close() error {
	i.closed = true

	var first error
	for _, src := range i.iters {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	i.iters = nil
	return first
}

func (i *ConcatIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}

	if len(i.iters) > 0 {
		return i.iters[0].Err()
	}
	return nil
}

func (i *ConcatIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}

	for len(i.iters) > 0 {
		head := i.iters[0]

		if head.Next() {
			return true
		}

		if err := head.Err(); err != nil {
			i.err = err
			return false
		}

		_ = head.Close()
		i.iters = i.iters[1:]
	}
	return false
}

func (i *ConcatIter[T]) Value() T {
	if len(i.iters) == 0 {
		var v T
		return v
	}
	return i.iters[0].Value()
}
