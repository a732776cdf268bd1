package fastbench

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	err := Errorf(ErrInvalidConfig, "tree size %d", 0)
	if !IsInvalidConfig(err) {
		t.Fatalf("IsInvalidConfig(%v) = false", err)
	}
	if IsConstruction(err) {
		t.Fatalf("IsConstruction(%v) = true", err)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("allocation failed")
	err := WrapError(ErrConstruction, cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
	if !IsConstruction(err) {
		t.Fatal("wrapped error lost its code")
	}
	// Codes survive another layer of fmt wrapping.
	outer := fmt.Errorf("engine mdbx: %w", err)
	if !IsConstruction(outer) {
		t.Fatal("code not found through fmt.Errorf wrapping")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrUnknownEngine)
	want := "fastbench: unknown engine"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
