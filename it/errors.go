package it

import (
	"fmt"

	"github.com/flgo/flgo"
)

const (
	// ErrEmptySequence is returned by terminal operations that need at least one surviving element,
	// such as Reduce without an initial value, or Min and Max.
	ErrEmptySequence flgo.Error = "EmptySequence"
	// ErrNotIterable is the panic value of New when the given source cannot be iterated.
	ErrNotIterable flgo.Error = "NotIterable"
	// ErrNotCallable is the panic value of chaining methods when the given transformation
	// is neither a textual lambda nor a function.
	ErrNotCallable flgo.Error = "NotCallable"
	// ErrNegativeCount is the panic value of Skip and Take when given a negative count.
	ErrNegativeCount flgo.Error = "NegativeCount"
	// ErrInvalidStep is the panic value of Every when given a step below one.
	ErrInvalidStep flgo.Error = "InvalidStep"
)

// TransformError reports a staged transformation that failed during traversal.
// It carries the stage operation name, the zero-based position of the source element
// that was being processed, and the original failure.
type TransformError struct {
	Op    string
	Index int
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("it: %s failed on element %d: %v", e.Op, e.Index, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *TransformError) Cause() error {
	return e.Err
}

func errPredicate(got interface{}) error {
	return fmt.Errorf("predicate returned %T, want bool", got)
}

func errNotSequence(got interface{}) error {
	return fmt.Errorf("result of type %T is not a sequence", got)
}
