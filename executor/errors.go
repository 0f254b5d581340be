package executor

import (
	"errors"
	"fmt"

	"go.creack.net/calc/value"
)

// Sentinel causes of an *EvaluationError, for use with errors.Is.
var (
	ErrUnresolved    = errors.New("unresolved identifier")
	ErrNoEnvironment = errors.New("no environment to assign")
	ErrAbsentOperand = value.ErrAbsentOperand
	ErrTypeMismatch  = value.ErrTypeMismatch
)

// EvaluationError is a failure while walking the tree: an unknown
// identifier, an operand that cannot be promoted, or an absent value used
// as an operand.
type EvaluationError struct {
	Name string // Identifier involved, if any.
	Err  error
}

func (e *EvaluationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q", e.Err, e.Name)
	}
	return e.Err.Error()
}

func (e *EvaluationError) Unwrap() error { return e.Err }
