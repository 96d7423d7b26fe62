// Package it provides a lazy, chainable wrapper around arbitrary sequences.
//
// A wrapper is built over a source, extended with deferred transformations and
// finally drained by a terminal operation:
//
//	result, err := it.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
//		Map("|v| v * v").
//		Filter("|v| v % 3 == 0").
//		Skip(1).
//		Collect()
//	// result renders as ItO<[36, 81]>
//
// Transformations are either textual lambdas (compiled by the expr package) or
// native functions of any compatible signature. Nothing is pulled from the
// source until a terminal operation runs; every traversal threads one element
// at a time through the full stage sequence, so even infinite sources can be
// consumed when bounded with Take.
//
// Chaining methods never mutate the receiver. Each returns a new wrapper that
// shares the already built stage prefix, so a wrapper can be branched into
// several downstream variants and each branch traverses independently.
//
// Malformed transformations (bad lambda syntax, wrong arity, non-callable
// values) are programmer errors and panic at chain-build time. Failures during
// traversal are returned from the terminal operation as errors, and no partial
// result is produced.
package it

import (
	"github.com/flgo/flgo/expr"
	"github.com/flgo/flgo/iterators"
)

// It is the fluent handle over a lazy pipeline.
type It struct {
	pipeline *pipeline
}

// New wraps a source into a lazy pipeline. The source may be a slice or array
// of any element type, a flgo.Iterator, any value with the iterator method set
// (Close/Err/Next/Value) over some element type, a generator function
// func() (interface{}, bool), another *It, or a realized *Result.
// Any other value panics with ErrNotIterable.
func New(src interface{}) *It {
	s, err := newSource(src)
	if err != nil {
		panic(err)
	}
	return &It{pipeline: &pipeline{source: s}}
}

func (i *It) withStage(st *stage) *It {
	return &It{pipeline: i.pipeline.extend(st)}
}

// Map stages a transformation that replaces every element with f(element).
func (i *It) Map(f interface{}) *It {
	return i.withStage(&stage{kind: stageMap, fn: mustCallable(f, 1)})
}

// Filter stages a predicate; only elements for which it returns true survive.
func (i *It) Filter(f interface{}) *It {
	return i.withStage(&stage{kind: stageFilter, fn: mustCallable(f, 1)})
}

// FilterMap stages a transformation and drops every empty result:
// nil, false, zero numbers and empty strings are discarded.
func (i *It) FilterMap(f interface{}) *It {
	return i.withStage(&stage{kind: stageFilterMap, fn: mustCallable(f, 1)})
}

// FlatMap stages a transformation whose sequence results are flattened into
// the stream, each sub-element threaded through the remaining stages in order.
func (i *It) FlatMap(f interface{}) *It {
	return i.withStage(&stage{kind: stageFlatMap, fn: mustCallable(f, 1)})
}

// Skip stages dropping the first n elements that reach it.
func (i *It) Skip(n int) *It {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	return i.withStage(&stage{kind: stageSkip, n: n})
}

// Take stages a bound of n elements. Once the bound is reached the whole
// traversal ends, so Take is the way to consume a bounded amount of an
// infinite source.
func (i *It) Take(n int) *It {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	return i.withStage(&stage{kind: stageTake, n: n})
}

// Every stages keeping one element out of every n, starting with the first.
func (i *It) Every(n int) *It {
	if n < 1 {
		panic(ErrInvalidStep)
	}
	return i.withStage(&stage{kind: stageEvery, n: n})
}

// Chain concatenates this pipeline's output with further sources, in order.
// The given sources accept the same forms as New.
func (i *It) Chain(sources ...interface{}) *It {
	parts := make([]source, 0, len(sources)+1)
	parts = append(parts, pipelineSource{p: i.pipeline})
	for _, src := range sources {
		s, err := newSource(src)
		if err != nil {
			panic(err)
		}
		parts = append(parts, s)
	}
	return &It{pipeline: &pipeline{source: concatSource{parts: parts}}}
}

// Collect drains the pipeline and returns the surviving elements in traversal order.
func (i *It) Collect() (*Result, error) {
	values, err := iterators.Collect[interface{}](i.pipeline.run())
	if err != nil {
		return nil, err
	}
	return &Result{values: values}, nil
}

// ForEach drains the pipeline, invoking f once per surviving element in
// traversal order, and returns the same Result Collect would. Side effecting
// iteration deliberately keeps the computed values inspectable.
// Returning iterators.Break from a native f ends the iteration early.
func (i *It) ForEach(f interface{}) (*Result, error) {
	fn := mustCallable(f, 1)

	values := []interface{}{}
	index := 0
	err := iterators.ForEach[interface{}](i.pipeline.run(), func(v interface{}) error {
		if _, err := fn.call([]interface{}{v}); err != nil {
			if err == iterators.Break {
				return iterators.Break
			}
			return &TransformError{Op: "for_each", Index: index, Err: err}
		}
		values = append(values, v)
		index++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Result{values: values}, nil
}

// Reduce left-folds the surviving elements with f. With an initial value the
// fold starts from it and an empty sequence returns it unchanged; without one
// the first element seeds the accumulator and an empty sequence fails with
// ErrEmptySequence.
func (i *It) Reduce(f interface{}, init ...interface{}) (interface{}, error) {
	fn := mustCallable(f, 2)
	index := 0
	fold := func(acc, v interface{}) (interface{}, error) {
		out, err := fn.call([]interface{}{acc, v})
		if err != nil {
			return nil, &TransformError{Op: "reduce", Index: index, Err: err}
		}
		index++
		return out, nil
	}

	if len(init) > 0 {
		return iterators.Reduce[interface{}, interface{}](i.pipeline.run(), init[0], fold)
	}

	iter := i.pipeline.run()
	defer iter.Close()

	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptySequence
	}

	acc := iter.Value()
	index++
	for iter.Next() {
		var err error
		acc, err = fold(acc, iter.Value())
		if err != nil {
			return nil, err
		}
	}
	return acc, iter.Err()
}

// First drains at most one element and returns it.
// An empty pipeline fails with iterators.ErrNotFound.
func (i *It) First() (interface{}, error) {
	return iterators.First[interface{}](i.pipeline.run())
}

// Last drains the pipeline and returns the final surviving element.
// An empty pipeline fails with iterators.ErrNotFound.
func (i *It) Last() (interface{}, error) {
	return iterators.Last[interface{}](i.pipeline.run())
}

// Count drains the pipeline and returns the number of surviving elements.
func (i *It) Count() (int, error) {
	return iterators.Count[interface{}](i.pipeline.run())
}

// Min drains the pipeline and returns the smallest surviving element,
// using the expression language's ordering of numbers and strings.
func (i *It) Min() (interface{}, error) {
	min, _, err := i.minMax()
	return min, err
}

// Max drains the pipeline and returns the largest surviving element.
func (i *It) Max() (interface{}, error) {
	_, max, err := i.minMax()
	return max, err
}

// MinMax drains the pipeline once and returns both extremes.
func (i *It) MinMax() (interface{}, interface{}, error) {
	return i.minMax()
}

func (i *It) minMax() (min, max interface{}, err error) {
	iter := i.pipeline.run()
	defer iter.Close()

	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrEmptySequence
	}

	min, max = iter.Value(), iter.Value()
	for iter.Next() {
		v := iter.Value()

		below, err := expr.Less(v, min)
		if err != nil {
			return nil, nil, err
		}
		if below {
			min = v
			continue
		}

		above, err := expr.Less(max, v)
		if err != nil {
			return nil, nil, err
		}
		if above {
			max = v
		}
	}
	return min, max, iter.Err()
}
