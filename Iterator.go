package flgo

import (
	"io"
)

// Iterator encapsulates accessing and traversing a lazy sequence of values.
// Clients use an Iterator to consume a sequence without knowing its representation,
// be that an in-memory slice, a generator function or an external resource.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene.
	// For all other cases where the underling io is handled on a higher level, it should simply return nil.
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
