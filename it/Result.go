package it

import (
	"fmt"
	"strings"

	"github.com/flgo/flgo/iterators"
)

// Result is the realized, ordered outcome of a terminal operation.
// It keeps the collected values inspectable and re-wrappable with New.
type Result struct {
	values []interface{}
}

// Unwrap returns the collected values in traversal order.
func (r *Result) Unwrap() []interface{} {
	return r.values
}

// Len returns the number of collected values.
func (r *Result) Len() int {
	return len(r.values)
}

// String renders the result as a tagged wrapper around the sequence literal,
// e.g. ItO<[36, 81]>. Debug output only, not a machine readable format.
func (r *Result) String() string {
	var sb strings.Builder
	sb.WriteString("ItO<[")
	for i, v := range r.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]>")
	return sb.String()
}

// ForEach invokes f on every collected value in order and returns the Result
// itself, so debug printing can be chained without losing the value.
// It is a debug convenience: a failing callable panics.
// Returning iterators.Break from a native f ends the iteration early.
func (r *Result) ForEach(f interface{}) *Result {
	fn := mustCallable(f, 1)
	for _, v := range r.values {
		if _, err := fn.call([]interface{}{v}); err != nil {
			if err == iterators.Break {
				break
			}
			panic(err)
		}
	}
	return r
}
