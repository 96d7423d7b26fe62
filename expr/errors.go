package expr

import (
	"fmt"
)

// SyntaxError reports a textual lambda that does not conform to the accepted grammar.
type SyntaxError struct {
	Source string
	Pos    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error in %q at offset %d: %s", e.Source, e.Pos, e.Msg)
}

// ArityError reports a lambda that was given a different number of arguments than it has parameters.
type ArityError struct {
	Source string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expr: %q takes %d argument(s) but %d given", e.Source, e.Want, e.Got)
}

// EvalError reports a failure while evaluating a compiled lambda against concrete argument values.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "expr: " + e.Msg
}

func evalErrorf(format string, args ...interface{}) *EvalError {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}
