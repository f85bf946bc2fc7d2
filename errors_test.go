package hwaddr

import (
	"errors"
	"fmt"
	"testing"
)

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Input: "-1", Err: ErrInvalidArgument}

	want := `argument "-1": invalid argument`
	if err.Error() != want {
		t.Errorf("ArgumentError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestArgumentErrorUnwrap(t *testing.T) {
	err := &ArgumentError{Input: "0x1000000000000", Err: ErrOutOfRange}

	if err.Unwrap() != ErrOutOfRange {
		t.Error("ArgumentError.Unwrap() did not return inner error")
	}
}

func TestArgumentErrorAs(t *testing.T) {
	err := fmt.Errorf("formatting node id: %w", invalidArgument("ten", "not an integer"))

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatal("errors.As() should find ArgumentError in wrapped chain")
	}

	if argErr.Input != "ten" {
		t.Errorf("ArgumentError.Input = %q, want %q", argErr.Input, "ten")
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is(err, ErrInvalidArgument) should be true through Unwrap")
	}
}

func TestInvalidArgumentMessage(t *testing.T) {
	err := invalidArgument("-5", "negative value")

	want := `argument "-5": invalid argument: negative value`
	if err.Error() != want {
		t.Errorf("invalidArgument().Error() = %q, want %q", err.Error(), want)
	}
}

func TestSentinelErrorsWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidArgument wrapped", fmt.Errorf("bad: %w", ErrInvalidArgument), ErrInvalidArgument},
		{"ErrOutOfRange wrapped", &ArgumentError{Input: "x", Err: ErrOutOfRange}, ErrOutOfRange},
		{"ErrNoInterfaces direct", ErrNoInterfaces, ErrNoInterfaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is() should find %v in %v", tt.sentinel, tt.err)
			}
		})
	}
}
