package iterators

import (
	"github.com/flgo/flgo"
)

// Reduce left-folds the iterator's values into a single result, starting from the initial value.
// The block may optionally report an error, which aborts the fold.
func Reduce[
	T, Result any,
	BLK func(Result, T) Result |
		func(Result, T) (Result, error),
](i flgo.Iterator[T], initial Result, blk BLK) (rv Result, rErr error) {
	var do func(Result, T) (Result, error)
	switch blk := any(blk).(type) {
	case func(Result, T) Result:
		do = func(result Result, t T) (Result, error) {
			return blk(result, t), nil
		}
	case func(Result, T) (Result, error):
		do = blk
	}
	defer func() {
		cErr := i.Close()
		if rErr != nil {
			return
		}
		rErr = cErr
	}()
	var v = initial
	for i.Next() {
		var err error
		v, err = do(v, i.Value())
		if err != nil {
			return v, err
		}
	}
	return v, i.Err()
}
