package planner

import "errors"

// Error implements errors unique to planners
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

var errUnknownType = errors.New("unknown planner type")

var errUnsupportedAlgorithm = errors.New("prioritized sweeping only " +
	"supports one-step algorithms")

var errNegativeSteps = errors.New("planning steps cannot be negative")

// IsUnknownType returns whether or not an error reports that a planner
// type does not exist
func IsUnknownType(err error) bool {
	if planErr, ok := err.(*Error); ok {
		err = planErr.Err
	}
	return err == errUnknownType
}

// IsUnsupportedAlgorithm returns whether or not an error reports that a
// planner cannot replay transitions of the configured algorithm
func IsUnsupportedAlgorithm(err error) bool {
	if planErr, ok := err.(*Error); ok {
		err = planErr.Err
	}
	return err == errUnsupportedAlgorithm
}
