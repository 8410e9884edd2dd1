package trellis

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned, before any geometry is generated,
	// when a structural precondition is violated: a count below one or a
	// dimension that is not positive.
	ErrInvalidParameter = errors.New("trellis: invalid parameter")

	// ErrDegenerateGeometry is returned by Profile.Validate for
	// self-intersecting or zero-area contours.
	ErrDegenerateGeometry = errors.New("trellis: degenerate geometry")
)

// ParamError describes which parameter was rejected and why.
// errors.Is(err, ErrInvalidParameter) holds for every ParamError.
type ParamError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("trellis: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// requireCount rejects counts below one.
func requireCount(param string, v int) error {
	if v < 1 {
		return &ParamError{Param: param, Value: v, Reason: "must be at least 1"}
	}
	return nil
}

// requirePositive rejects dimensions that are not finite and positive.
func requirePositive(param string, v float64) error {
	if math.IsInf(v, 0) {
		return &ParamError{Param: param, Value: v, Reason: "must be finite"}
	}
	if !(v > 0) {
		return &ParamError{Param: param, Value: v, Reason: "must be greater than 0"}
	}
	return nil
}
