package flgo

// Error is an error implementation that allows error values to be declared as exported constants.
//
//	const ErrSomething flgo.Error = "something went wrong"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }
