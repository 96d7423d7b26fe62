package expr

import (
	"reflect"
)

type node interface {
	eval(args []interface{}) (interface{}, error)
}

type literalNode struct {
	value interface{}
}

func (n *literalNode) eval([]interface{}) (interface{}, error) {
	return n.value, nil
}

type paramNode struct {
	name  string
	index int
}

func (n *paramNode) eval(args []interface{}) (interface{}, error) {
	return args[n.index], nil
}

type unaryNode struct {
	op      string
	operand node
}

func (n *unaryNode) eval(args []interface{}) (interface{}, error) {
	v, err := n.operand.eval(args)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "-":
		switch v := v.(type) {
		case int:
			return -v, nil
		case float64:
			return -v, nil
		}
		return nil, evalErrorf("cannot negate %T value", v)
	case "!":
		b, ok := v.(bool)
		if !ok {
			return nil, evalErrorf("cannot apply ! to %T value", v)
		}
		return !b, nil
	}
	return nil, evalErrorf("unknown unary operator %q", n.op)
}

type binaryNode struct {
	op    string
	left  node
	right node
}

func (n *binaryNode) eval(args []interface{}) (interface{}, error) {
	lv, err := n.left.eval(args)
	if err != nil {
		return nil, err
	}

	// boolean operators short-circuit
	if n.op == "&&" || n.op == "||" {
		lb, ok := lv.(bool)
		if !ok {
			return nil, evalErrorf("left operand of %s must be bool, got %T", n.op, lv)
		}
		if n.op == "&&" && !lb {
			return false, nil
		}
		if n.op == "||" && lb {
			return true, nil
		}
		rv, err := n.right.eval(args)
		if err != nil {
			return nil, err
		}
		rb, ok := rv.(bool)
		if !ok {
			return nil, evalErrorf("right operand of %s must be bool, got %T", n.op, rv)
		}
		return rb, nil
	}

	rv, err := n.right.eval(args)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "+", "-", "*", "/", "%":
		return arithmetic(n.op, lv, rv)
	case "==":
		eq, err := equal(lv, rv)
		return eq, err
	case "!=":
		eq, err := equal(lv, rv)
		if err != nil {
			return nil, err
		}
		return !eq, nil
	case "<", "<=", ">", ">=":
		cmp, err := compare(lv, rv)
		if err != nil {
			return nil, err
		}
		switch n.op {
		case "<":
			return cmp < 0, nil
		case "<=":
			return cmp <= 0, nil
		case ">":
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	}
	return nil, evalErrorf("unknown operator %q", n.op)
}

func arithmetic(op string, a, b interface{}) (interface{}, error) {
	if op == "+" {
		as, aok := a.(string)
		bs, bok := b.(string)
		if aok && bok {
			return as + bs, nil
		}
	}

	ai, af, aIsInt, aok := toNumber(a)
	bi, bf, bIsInt, bok := toNumber(b)
	if !aok || !bok {
		return nil, evalErrorf("unsupported operand types for %s: %T and %T", op, a, b)
	}

	if aIsInt && bIsInt {
		switch op {
		case "+":
			return ai + bi, nil
		case "-":
			return ai - bi, nil
		case "*":
			return ai * bi, nil
		case "/":
			if bi == 0 {
				return nil, evalErrorf("integer division by zero")
			}
			return ai / bi, nil
		case "%":
			if bi == 0 {
				return nil, evalErrorf("integer modulo by zero")
			}
			return ai % bi, nil
		}
	}

	if op == "%" {
		return nil, evalErrorf("%% requires integer operands, got %T and %T", a, b)
	}

	switch op {
	case "+":
		return af + bf, nil
	case "-":
		return af - bf, nil
	case "*":
		return af * bf, nil
	case "/":
		// float division follows IEEE 754, so x/0.0 is Inf
		return af / bf, nil
	}
	return nil, evalErrorf("unknown operator %q", op)
}

func equal(a, b interface{}) (bool, error) {
	if _, _, _, ok := toNumber(a); ok {
		if _, _, _, ok := toNumber(b); ok {
			cmp, err := compare(a, b)
			return cmp == 0, err
		}
	}

	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}

	if reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.TypeOf(a).Comparable() {
		return a == b, nil
	}
	return false, evalErrorf("cannot compare %T and %T for equality", a, b)
}

// compare returns -1, 0 or +1. It orders numbers and strings.
func compare(a, b interface{}) (int, error) {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}

	ai, af, aIsInt, aok2 := toNumber(a)
	bi, bf, bIsInt, bok2 := toNumber(b)
	if !aok2 || !bok2 {
		return 0, evalErrorf("cannot order %T and %T", a, b)
	}

	if aIsInt && bIsInt {
		switch {
		case ai < bi:
			return -1, nil
		case ai > bi:
			return 1, nil
		default:
			return 0, nil
		}
	}

	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether a orders before b using the same ordering the comparison
// operators of the expression language use. It works on numbers and strings.
func Less(a, b interface{}) (bool, error) {
	cmp, err := compare(normalize(a), normalize(b))
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

// toNumber reports the numeric value of v either as int or as float64.
func toNumber(v interface{}) (i int, f float64, isInt bool, ok bool) {
	switch v := v.(type) {
	case int:
		return v, float64(v), true, true
	case float64:
		return 0, v, false, true
	}
	return 0, 0, false, false
}

// normalize widens every integer kind to int and every float kind to float64,
// so the evaluator only has to deal with two numeric representations.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case int, float64, bool, string, nil:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return float64(v)
	}
	return v
}
