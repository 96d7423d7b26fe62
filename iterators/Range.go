package iterators

// Range returns an iterator over the integers of the half-open interval [begin, end).
// An empty interval yields no values.
func Range(begin, end int) *RangeIter {
	return &RangeIter{Begin: begin, End: end, current: begin}
}

type RangeIter struct {
	Begin int
	End   int

	closed  bool
	current int
	value   int
}

func (i *RangeIter) Close() error {
	i.closed = true
	return nil
}

func (i *RangeIter) Err() error {
	return nil
}

func (i *RangeIter) Next() bool {
	if i.closed {
		return false
	}

	if i.current >= i.End {
		return false
	}

	i.value = i.current
	i.current++
	return true
}

func (i *RangeIter) Value() int {
	return i.value
}
