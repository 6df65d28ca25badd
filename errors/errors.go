// Package errors defines the error taxonomy for the word-pair
// transformation core: invalid intervals, failed pattern lookups during
// apply, and non-joinable transformations.
package errors

import "fmt"

// InvalidIntervalError is raised when an Interval is constructed with
// start after end. Fatal at construction; indicates a programmer bug.
type InvalidIntervalError struct {
	Start int
	End   int
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval [%d, %d): start after end", e.Start, e.End)
}

// NewInvalidIntervalError constructs an InvalidIntervalError.
func NewInvalidIntervalError(start, end int) *InvalidIntervalError {
	return &InvalidIntervalError{Start: start, End: end}
}

// PatternNotFoundError is raised when an Edit's apply step does not
// find pre+replaced anywhere in the remaining input. Recovered locally
// by the clustering predicate; it is not a programmer bug.
type PatternNotFoundError struct {
	Remaining string
	Pattern   string
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("pattern %q not found in remaining input %q", e.Pattern, e.Remaining)
}

// NewPatternNotFoundError constructs a PatternNotFoundError.
func NewPatternNotFoundError(remaining, pattern string) *PatternNotFoundError {
	return &PatternNotFoundError{Remaining: remaining, Pattern: pattern}
}

// NotJoinableError is raised when Join is called on two transformations
// that are not joinable. Callers that guard with MaybeJoinable first
// never trigger it.
type NotJoinableError struct {
	A, B fmt.Stringer
}

func (e *NotJoinableError) Error() string {
	return fmt.Sprintf("transformations %s and %s are not joinable", e.A, e.B)
}

// NewNotJoinableError constructs a NotJoinableError.
func NewNotJoinableError(a, b fmt.Stringer) *NotJoinableError {
	return &NotJoinableError{A: a, B: b}
}
