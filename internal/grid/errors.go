package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is matched by every TypeError.
var ErrInvalidPosition = errors.New("invalid position")

// TypeError reports a value that is not a well-formed coordinate pair.
type TypeError struct {
	Value  any
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: %s (got %#v)", ErrInvalidPosition, e.Reason, e.Value)
}

func (e *TypeError) Unwrap() error {
	return ErrInvalidPosition
}
