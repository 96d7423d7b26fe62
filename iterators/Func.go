package iterators

// Func wraps a generator function into an iterator.
// The function is called once per Next and reports whether a value was produced.
// A Func iterator is single use: once the generator reports false, the sequence is over.
func Func[T any](next func() (T, bool)) *FuncIter[T] {
	return &FuncIter[T]{fn: next}
}

type FuncIter[T any] struct {
	fn func() (T, bool)

	closed bool
	done   bool
	value  T
}

func (i *FuncIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *FuncIter[T]) Err() error {
	return nil
}

func (i *FuncIter[T]) Next() bool {
	if i.closed || i.done {
		return false
	}

	v, ok := i.fn()
	if !ok {
		i.done = true
		return false
	}

	i.value = v
	return true
}

func (i *FuncIter[T]) Value() T {
	return i.value
}
