package ferrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{NoValidPlacement, InvariantViolation, PatcherError, IO}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestWrappedSentinelsUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("fill: no candidate checks: %w", NoValidPlacement)
	if !errors.Is(wrapped, NoValidPlacement) {
		t.Fatal("errors.Is should see through %w wrapping")
	}
	if errors.Is(wrapped, InvariantViolation) {
		t.Fatal("wrapped NoValidPlacement should not match InvariantViolation")
	}
}
