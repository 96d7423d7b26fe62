package it

import (
	"reflect"

	"github.com/flgo/flgo"
	"github.com/flgo/flgo/iterators"
)

// source produces the iterator a pipeline traversal pulls from.
// Slice backed sources yield a fresh iterator per traversal, so branched
// pipelines never interfere with each other. Generator and stream backed
// sources are single use: once drained, further traversals see no values.
type source interface {
	open() flgo.Iterator[interface{}]
}

type sliceSource struct {
	values []interface{}
}

func (s sliceSource) open() flgo.Iterator[interface{}] {
	return iterators.Slice(s.values)
}

type iterSource struct {
	iter flgo.Iterator[interface{}]
}

func (s iterSource) open() flgo.Iterator[interface{}] {
	return s.iter
}

type pipelineSource struct {
	p *pipeline
}

func (s pipelineSource) open() flgo.Iterator[interface{}] {
	return s.p.run()
}

type concatSource struct {
	parts []source
}

func (s concatSource) open() flgo.Iterator[interface{}] {
	iters := make([]flgo.Iterator[interface{}], len(s.parts))
	for i, part := range s.parts {
		iters[i] = part.open()
	}
	return iterators.Concat(iters...)
}

// newSource adapts the values accepted by New into a pipeline source.
func newSource(x interface{}) (source, error) {
	switch v := x.(type) {
	case nil:
		return nil, ErrNotIterable
	case *It:
		return pipelineSource{p: v.pipeline}, nil
	case *Result:
		return sliceSource{values: v.values}, nil
	case flgo.Iterator[interface{}]:
		return iterSource{iter: v}, nil
	case func() (interface{}, bool):
		return iterSource{iter: iterators.Func(v)}, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]interface{}, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return sliceSource{values: values}, nil
	}

	if iter, ok := adaptIterator(x); ok {
		return iterSource{iter: iter}, nil
	}
	return nil, ErrNotIterable
}

// adaptIterator recognizes any value implementing the Iterator method set for
// some concrete element type and re-exposes it with dynamically typed values.
func adaptIterator(x interface{}) (flgo.Iterator[interface{}], bool) {
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return nil, false
	}

	next := rv.MethodByName("Next")
	value := rv.MethodByName("Value")
	errM := rv.MethodByName("Err")
	closeM := rv.MethodByName("Close")
	if !next.IsValid() || !value.IsValid() || !errM.IsValid() || !closeM.IsValid() {
		return nil, false
	}

	ok := methodSignature(next, 0, 1) && next.Type().Out(0).Kind() == reflect.Bool &&
		methodSignature(value, 0, 1) &&
		methodSignature(errM, 0, 1) && errM.Type().Out(0) == errorInterface &&
		methodSignature(closeM, 0, 1) && closeM.Type().Out(0) == errorInterface
	if !ok {
		return nil, false
	}

	return &reflectedIterator{next: next, value: value, err: errM, close: closeM}, true
}

func methodSignature(m reflect.Value, numIn, numOut int) bool {
	t := m.Type()
	return t.NumIn() == numIn && t.NumOut() == numOut
}

type reflectedIterator struct {
	next  reflect.Value
	value reflect.Value
	err   reflect.Value
	close reflect.Value
}

func (r *reflectedIterator) Close() error {
	err, _ := r.close.Call(nil)[0].Interface().(error)
	return err
}

func (r *reflectedIterator) Err() error {
	err, _ := r.err.Call(nil)[0].Interface().(error)
	return err
}

func (r *reflectedIterator) Next() bool {
	return r.next.Call(nil)[0].Bool()
}

func (r *reflectedIterator) Value() interface{} {
	return r.value.Call(nil)[0].Interface()
}
