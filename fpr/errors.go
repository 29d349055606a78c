package fpr

import "fmt"

// ShapeError reports a length or dimension mismatch: scores vs items,
// a non-square EASE matrix, or a zero-length position mask when rows are
// requested.
type ShapeError struct{ Msg string }

func (e *ShapeError) Error() string { return "fpr: shape error: " + e.Msg }

func newShapeError(format string, args ...any) *ShapeError {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a value outside its legal domain: a negative score,
// an item id outside [0, I), a cooling factor outside [0,1], a negative
// temp penalty, or a duplicate item id within one collection.
type DomainError struct{ Msg string }

func (e *DomainError) Error() string { return "fpr: domain error: " + e.Msg }

func newDomainError(format string, args ...any) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// ArgumentError reports an invalid call argument, such as a negative
// num_rows.
type ArgumentError struct{ Msg string }

func (e *ArgumentError) Error() string { return "fpr: argument error: " + e.Msg }

func newArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
