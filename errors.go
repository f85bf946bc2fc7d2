package hwaddr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the formatting and conversion functions.
var (
	// ErrInvalidArgument is returned when a value is negative, nil, or not
	// an integer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned by a strict [Formatter] when a value does
	// not fit in 48 bits.
	ErrOutOfRange = errors.New("value exceeds 48 bits")

	// ErrNoInterfaces is returned by [NodeID] when no physical network
	// interface with a hardware address is available.
	ErrNoInterfaces = errors.New("no physical network interfaces found")
)

// ArgumentError records the input that a function rejected.
// Use [errors.As] to extract the input from wrapped errors.
type ArgumentError struct {
	Input string // offending input as text, e.g. "-1", "0xZZ"
	Err   error  // underlying sentinel or parse error
}

// Error returns a human-readable description of the rejected input.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// invalidArgument builds an [*ArgumentError] that matches [ErrInvalidArgument].
func invalidArgument(input, reason string) error {
	return &ArgumentError{Input: input, Err: fmt.Errorf("%w: %s", ErrInvalidArgument, reason)}
}
