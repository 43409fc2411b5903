package internal

import "github.com/pkg/errors"

// Threading errors up and down the sweep and the chain scans would add a ton of
// complexity to the code. Instead, we use panics, and the public API recovers
// to convert to an error.

var (
	// The input is not a simple polygon we can work with
	ErrMalformedInput = errors.New("malformed input")
	// The sweep produced an inconsistent state. For valid input this is a bug,
	// but a polygon that quietly breaks the simple polygon precondition will
	// usually end up here.
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// The panic value used by fatalf and malformedf. Panics carrying anything else
// are not ours, and are re-raised by HandleTriangulatePanicRecover.
type TriangulateError struct {
	err error
}

func (e *TriangulateError) Error() string {
	return e.err.Error()
}

func (e *TriangulateError) Unwrap() error {
	return e.err
}

// Panic with an invariant violation
func fatalf(format string, args ...interface{}) {
	panic(&TriangulateError{errors.Wrapf(ErrInvariantViolation, format, args...)})
}

// Panic with a malformed input error
func malformedf(format string, args ...interface{}) {
	panic(&TriangulateError{errors.Wrapf(ErrMalformedInput, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(*TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}

// Run fn, converting a TriangulateError panic into a returned error
func Catch(fn func()) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	fn()
	return nil
}
