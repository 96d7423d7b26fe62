package iterators

// Pipe return a sender and a receiver.
// The receiver side implements the iterator interface, while the sender side feeds it,
// typically from a goroutine that reads a blocking external resource.
func Pipe[T any]() (*PipeIn[T], *PipeOut[T]) {
	valueChan := make(chan T)
	doneChan := make(chan struct{}, 1)
	errChan := make(chan error, 1)
	return &PipeIn[T]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan},
		&PipeOut[T]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan}
}

// PipeOut implements the iterator interface while it's still being able to receive values, used for streaming.
type PipeOut[T any] struct {
	ValueChan <-chan T
	DoneChan  chan<- struct{}
	ErrChan   <-chan error

	value   T
	lastErr error
}

// Close sends a signal back that no more value should be sent because the receiver stopped listening.
func (i *PipeOut[T]) Close() error {
	defer func() { recover() }()
	i.DoneChan <- struct{}{}
	close(i.DoneChan)
	return nil
}

// Next blocks until the next value arrives on the pipe.
// It returns false once the sender side has been closed.
func (i *PipeOut[T]) Next() bool {
	v, ok := <-i.ValueChan
	if !ok {
		return false
	}

	i.value = v
	return true
}

// Err returns the error the pipe sender wanted to present to the pipe receiver.
func (i *PipeOut[T]) Err() error {
	err, ok := <-i.ErrChan
	if ok {
		i.lastErr = err
	}

	return i.lastErr
}

func (i *PipeOut[T]) Value() T {
	return i.value
}

// PipeIn provides access to feed the receiver side with values.
type PipeIn[T any] struct {
	ValueChan chan<- T
	DoneChan  <-chan struct{}
	ErrChan   chan<- error
}

// Value sends a value to the PipeOut side.
// It reports false if no more values are expected because the receiver closed the pipe.
func (f *PipeIn[T]) Value(v T) (ok bool) {
	select {
	case f.ValueChan <- v:
		return true
	case <-f.DoneChan:
		return false
	}
}

// Error sends an error object to the PipeOut side, so it will be accessible with iterator.Err().
func (f *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}

	defer func() { recover() }()
	f.ErrChan <- err
}

// Close closes the value and err channels, which eventually notifies the receiver that no more value is expected.
func (f *PipeIn[T]) Close() error {
	defer func() { recover() }()
	close(f.ValueChan)
	close(f.ErrChan)
	return nil
}
