package projector

import "fmt"

// ValidationError reports a precondition violation: a malformed ellipse
// table, mismatched grid shapes, or a non-positive oversampling factor.
// All validation happens synchronously before any projection work starts,
// and a failed call computes nothing.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
