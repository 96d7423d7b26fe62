package iterators

// Sequence returns an infinite iterator over the arithmetic progression start, start+step, start+2*step, ...
// It never runs out of values; consumers must bound their consumption themselves.
func Sequence(start, step int) *SequenceIter {
	return &SequenceIter{Start: start, Step: step, current: start}
}

type SequenceIter struct {
	Start int
	Step  int

	closed  bool
	current int
	value   int
}

func (i *SequenceIter) Close() error {
	i.closed = true
	return nil
}

func (i *SequenceIter) Err() error {
	return nil
}

func (i *SequenceIter) Next() bool {
	if i.closed {
		return false
	}

	i.value = i.current
	i.current += i.Step
	return true
}

func (i *SequenceIter) Value() int {
	return i.value
}
