package types

import (
	"errors"
	"fmt"
)

// ErrValidation is a sentinel matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation")

// ErrCoercion is a sentinel matched by every *CoercionError via errors.Is.
var ErrCoercion = errors.New("coercion")

// ValidationError describes a single problem found while validating a value.
// For composite types Path qualifies where the problem sits
// (e.g. `field "age"` or `item at index 2: field "name"`).
type ValidationError struct {
	Path   string // location qualifier, empty at the root
	Reason string // human-readable reason for failure
	Value  any    // the value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Result is the outcome of Type.Validate: a validity flag plus every
// problem found, both as formatted strings and as structured errors.
// Validation never raises; errors are data.
type Result struct {
	Valid       bool
	Errors      []string
	FieldErrors []*ValidationError
}

func newResult(errs []*ValidationError) Result {
	r := Result{Valid: len(errs) == 0, FieldErrors: errs}
	if len(errs) > 0 {
		r.Errors = make([]string, len(errs))
		for i, e := range errs {
			r.Errors[i] = e.Error()
		}
	}
	return r
}

// Err returns the result's problems as a single error, or nil when valid.
func (r Result) Err() error {
	switch len(r.FieldErrors) {
	case 0:
		return nil
	case 1:
		return r.FieldErrors[0]
	}
	return &aggregateError{errs: r.FieldErrors}
}

type aggregateError struct {
	errs []*ValidationError
}

func (e *aggregateError) Error() string {
	msg := fmt.Sprintf("%d validation errors:\n", len(e.errs))
	for i, err := range e.errs {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *aggregateError) Unwrap() []error {
	out := make([]error, 0, len(e.errs)+1)
	out = append(out, ErrValidation)
	for _, err := range e.errs {
		out = append(out, err)
	}
	return out
}

// prefixErrors requalifies child errors under a parent location such as
// `field "age"` or `item at index 2`.
func prefixErrors(prefix string, errs []*ValidationError) []*ValidationError {
	out := make([]*ValidationError, 0, len(errs))
	for _, e := range errs {
		path := prefix
		if e.Path != "" {
			path = prefix + ": " + e.Path
		}
		out = append(out, &ValidationError{Path: path, Reason: e.Reason, Value: e.Value})
	}
	return out
}

// CoercionError signals an unrecoverable conversion failure. Unlike
// validation, coercion is transactional: the first failure aborts and
// propagates as an error, which the caller translates for its clients.
type CoercionError struct {
	Value  any    // the offending input
	Target string // name of the type the value was being coerced to
	Reason string // human-readable reason
	cause  error
}

func newCoercionError(value any, target, reason string, cause error) *CoercionError {
	return &CoercionError{Value: value, Target: target, Reason: reason, cause: cause}
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %v (%T) to %s: %s", e.Value, e.Value, e.Target, e.Reason)
}

// Unwrap exposes the sentinel and, when present, the underlying cause
// (e.g. a JSON parse error) to errors.Is/errors.As.
func (e *CoercionError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrCoercion, e.cause}
	}
	return []error{ErrCoercion}
}
