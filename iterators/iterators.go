// Package iterators provide lazy iterator implementations and the helpers to consume them.
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An iterator represents an iterable sequence of elements,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
package iterators

import (
	"github.com/flgo/flgo"
)

const (
	// ErrClosed is the value that will be returned if a iterator has been closed but further consumption is attempted.
	ErrClosed flgo.Error = "Closed"
	// ErrNotFound is returned by consumers that expect at least one element out of an iterator that yields none.
	ErrNotFound flgo.Error = "NotFound"
)

// Break can be returned from a ForEach block to stop the iteration early without reporting an error.
const Break flgo.Error = `iterators:break`
