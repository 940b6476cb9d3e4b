package advanced

import "github.com/pkg/errors"

// Threading errors through every step of a loop walk would add a lot of noise
// to code that is mostly link surgery. Instead, we panic with a wrapped error,
// and the public API recovers to convert it back.

var (
	// A control point whose neighbors are not both normal points. This means a
	// cubic or higher order curve, which is not supported.
	ErrUnsupportedCurveOrder = errors.New("only quadratic bezier curves are supported")

	// A loop which does not return to its start, or which references edges or
	// vertices that don't exist.
	ErrMalformedLoop = errors.New("malformed boundary loop")

	// Fewer than two samples requested for an arc.
	ErrDegenerateSampleCount = errors.New("degenerate sample count")
)

// The panic value used by fatalf. Keeping it a distinct type means only our own
// failures get converted into errors. Anything else keeps panicking.
type separateError struct {
	err error
}

// Panic with kind wrapped in a formatted message.
func fatalf(kind error, format string, args ...interface{}) {
	panic(separateError{errors.Wrapf(kind, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if separateErr, ok := r.(separateError); ok {
			return separateErr.err
		}
		panic(r)
	}
	return nil
}
