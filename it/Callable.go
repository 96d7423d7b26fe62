package it

import (
	"fmt"
	"reflect"

	"github.com/flgo/flgo/expr"
)

// callable is the staged form of a user supplied transformation:
// either a compiled textual lambda or a native function adapted through reflection.
type callable struct {
	name  string
	arity int
	call  func(args []interface{}) (interface{}, error)
}

// newCallable accepts a textual lambda, an *expr.Lambda or any function value,
// and adapts it into a callable of the required arity.
func newCallable(f interface{}, arity int) (*callable, error) {
	switch f := f.(type) {
	case nil:
		return nil, ErrNotCallable
	case string:
		lambda, err := expr.Compile(f)
		if err != nil {
			return nil, err
		}
		return lambdaCallable(lambda, arity)
	case *expr.Lambda:
		return lambdaCallable(f, arity)
	}
	return funcCallable(f, arity)
}

// mustCallable is newCallable for the chaining methods, where a malformed
// transformation is a programmer error and surfaces synchronously as a panic.
func mustCallable(f interface{}, arity int) *callable {
	c, err := newCallable(f, arity)
	if err != nil {
		panic(err)
	}
	return c
}

func lambdaCallable(lambda *expr.Lambda, arity int) (*callable, error) {
	if lambda.Arity() != arity {
		return nil, &expr.ArityError{Source: lambda.Source(), Want: arity, Got: lambda.Arity()}
	}
	return &callable{
		name:  lambda.Source(),
		arity: arity,
		call: func(args []interface{}) (interface{}, error) {
			return lambda.Call(args...)
		},
	}, nil
}

func funcCallable(f interface{}, arity int) (*callable, error) {
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func {
		return nil, ErrNotCallable
	}

	rt := rv.Type()
	if rt.IsVariadic() {
		if rt.NumIn()-1 > arity {
			return nil, &expr.ArityError{Source: rt.String(), Want: arity, Got: rt.NumIn() - 1}
		}
	} else if rt.NumIn() != arity {
		return nil, &expr.ArityError{Source: rt.String(), Want: arity, Got: rt.NumIn()}
	}

	if rt.NumOut() > 2 {
		return nil, ErrNotCallable
	}
	if rt.NumOut() == 2 && !rt.Out(1).Implements(errorInterface) {
		return nil, ErrNotCallable
	}

	return &callable{
		name:  rt.String(),
		arity: arity,
		call: func(args []interface{}) (v interface{}, err error) {
			defer func() {
				if recovered := recover(); recovered != nil {
					v, err = nil, fmt.Errorf("%v", recovered)
				}
			}()

			in, err := adaptArguments(rt, args)
			if err != nil {
				return nil, err
			}

			out := rv.Call(in)
			switch len(out) {
			case 0:
				return nil, nil
			case 1:
				if rt.Out(0).Implements(errorInterface) {
					err, _ := out[0].Interface().(error)
					return nil, err
				}
				return out[0].Interface(), nil
			default:
				err, _ := out[1].Interface().(error)
				if err != nil {
					return nil, err
				}
				return out[0].Interface(), nil
			}
		},
	}, nil
}

var errorInterface = reflect.TypeOf((*error)(nil)).Elem()

func adaptArguments(rt reflect.Type, args []interface{}) ([]reflect.Value, error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := parameterType(rt, i)

		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}

		av := reflect.ValueOf(arg)
		if av.Type().AssignableTo(pt) {
			in[i] = av
			continue
		}
		if isNumericKind(av.Kind()) && isNumericKind(pt.Kind()) {
			in[i] = av.Convert(pt)
			continue
		}
		return nil, fmt.Errorf("cannot use %T value as %s argument", arg, pt)
	}
	return in, nil
}

func parameterType(rt reflect.Type, i int) reflect.Type {
	if rt.IsVariadic() && i >= rt.NumIn()-1 {
		return rt.In(rt.NumIn() - 1).Elem()
	}
	return rt.In(i)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
