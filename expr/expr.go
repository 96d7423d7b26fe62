// Package expr compiles small textual lambda expressions into callables.
//
// The accepted grammar follows a Rust-like notation: a parameter list enclosed
// between pipes, followed by a single expression over those parameters.
//
//	|v| v * v
//	|acc, v| acc + v
//	|| 42
//
// The expression body supports arithmetic (+ - * / %), comparison
// (== != < <= > >=), boolean (&& || !) operators, parenthesised grouping and
// literal values (integers, floats, double-quoted strings, true, false).
package expr

import (
	"sync"
)

// Lambda is a compiled textual lambda expression.
// A Lambda is immutable and safe for concurrent use.
type Lambda struct {
	source string
	params []string
	body   node
}

// Compile parses a textual lambda into a callable Lambda.
// Compilation is pure and memoized per distinct source text,
// so compiling the same text twice returns the same Lambda.
func Compile(source string) (*Lambda, error) {
	cacheMutex.RLock()
	cached, ok := cache[source]
	cacheMutex.RUnlock()
	if ok {
		return cached, nil
	}

	params, body, offset, err := splitHeader(source)
	if err != nil {
		return nil, err
	}

	root, err := parse(source, body, offset, params)
	if err != nil {
		return nil, err
	}

	lambda := &Lambda{source: source, params: params, body: root}

	cacheMutex.Lock()
	cache[source] = lambda
	cacheMutex.Unlock()
	return lambda, nil
}

// Source returns the text the Lambda was compiled from.
func (l *Lambda) Source() string {
	return l.source
}

// Arity returns the number of parameters the Lambda accepts.
func (l *Lambda) Arity() int {
	return len(l.params)
}

// Call evaluates the Lambda against the given arguments.
// The argument count must match Arity, otherwise an ArityError is returned.
func (l *Lambda) Call(args ...interface{}) (interface{}, error) {
	if len(args) != len(l.params) {
		return nil, &ArityError{Source: l.source, Want: len(l.params), Got: len(args)}
	}

	vs := make([]interface{}, len(args))
	for i, a := range args {
		vs[i] = normalize(a)
	}
	return l.body.eval(vs)
}

var (
	cacheMutex sync.RWMutex
	cache      = map[string]*Lambda{}
)
